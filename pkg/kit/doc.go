// Package kit locates the asset kit and discovers what it contains.
//
// A kit is a directory of hook scripts, helper modules, and configuration
// fragments laid out in named groups. The hooks group is the flat set of
// *.py files at the kit root; utils and statusline are directory trees
// installed as is; agents, commands, validators, skills, and output-styles
// are optional trees installed on request. settings.json at the kit root
// is not a group member, it is merged separately.
//
// The kit to install from is resolved by Locate: an explicitly configured
// directory wins, otherwise the embedded default kit is materialized into
// the user cache and used from there.
package kit
