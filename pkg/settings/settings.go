package settings

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"sort"

	"github.com/arthur-debert/clawkit/pkg/errors"
	"github.com/arthur-debert/clawkit/pkg/executor"
	"github.com/arthur-debert/clawkit/pkg/logging"
	"github.com/arthur-debert/clawkit/pkg/types"
)

// AppNameEnvKey is the env entry clawkit manages in the target settings.
// The kit's hooks read it to label logs and notifications.
const AppNameEnvKey = "CLAWKIT_APP_NAME"

const (
	hooksKey      = "hooks"
	statusLineKey = "statusLine"
	envKey        = "env"
)

// document is a parsed settings.json. Values stay opaque; the merge only
// inspects the three keys it manages and carries everything else through
// untouched.
type document map[string]interface{}

// MergeOptions contains options for merging kit settings into a target.
type MergeOptions struct {
	// SourcePath is the kit's settings.json.
	SourcePath string
	// TargetPath is the project's settings file, which may not exist yet.
	TargetPath string
	// AppName is the value written to the managed env entry.
	AppName string
	// Force overwrites hook entries, the status line, and the app name
	// even when the target already defines them.
	Force bool
}

// Merge folds the kit settings into the target settings file.
//
// Hook event keys are added unless present (replaced with Force); their
// values are taken whole, never merged entry by entry. The status line is
// set when absent or forced, and an explicit JSON null in the kit is a
// deliberate value, not a missing one. The managed env entry is set the
// same way inside an env object that is created if needed. Every other
// key in the target survives as is.
//
// When the merge changes nothing, no write happens and the outcome is
// MergeUnchanged. A target file that exists but is not valid JSON aborts
// the run; clawkit never overwrites settings it cannot parse.
func Merge(ctx context.Context, fsys types.FS, exec *executor.Executor, opts MergeOptions) (types.MergeOutcome, error) {
	logger := logging.GetLogger("settings.merge")
	logger.Debug().
		Str("source", opts.SourcePath).
		Str("target", opts.TargetPath).
		Bool("force", opts.Force).
		Msg("merging settings")

	source, err := loadSource(fsys, opts.SourcePath)
	if err != nil {
		return "", err
	}

	target, err := loadTarget(fsys, opts.TargetPath)
	if err != nil {
		return "", err
	}

	before, err := json.Marshal(target)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "cannot snapshot settings").
			WithDetail("path", opts.TargetPath)
	}

	if err := mergeHooks(source, target, opts.TargetPath, opts.Force); err != nil {
		return "", err
	}
	mergeStatusLine(source, target, opts.Force)
	if err := ensureAppName(target, opts.TargetPath, opts.AppName, opts.Force); err != nil {
		return "", err
	}

	after, err := json.Marshal(target)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "cannot serialize settings").
			WithDetail("path", opts.TargetPath)
	}

	if bytes.Equal(before, after) {
		logger.Info().
			Str("target", opts.TargetPath).
			Msg("settings already up to date")
		return types.MergeUnchanged, nil
	}

	content, err := json.MarshalIndent(target, "", "  ")
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "cannot serialize settings").
			WithDetail("path", opts.TargetPath)
	}
	content = append(content, '\n')

	if err := exec.WriteFile(ctx, opts.TargetPath, content); err != nil {
		return "", errors.Wrap(err, errors.ErrSettingsWrite, "failed to write settings").
			WithDetail("path", opts.TargetPath)
	}

	logger.Info().
		Str("target", opts.TargetPath).
		Msg("settings merged")
	return types.MergeApplied, nil
}

// loadSource reads the kit's settings.json. A kit without one, or with one
// that does not parse, is a broken kit.
func loadSource(fsys types.FS, path string) (document, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Newf(errors.ErrKitInvalid,
				"kit has no settings file: %s", path).
				WithDetail("path", path)
		}
		return nil, errors.Wrap(err, errors.ErrKitAccess, "cannot read kit settings").
			WithDetail("path", path)
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, errors.ErrKitInvalid, "kit settings is not valid JSON").
			WithDetail("path", path)
	}
	return doc, nil
}

// loadTarget reads the project's settings file. Absent means a fresh,
// empty document. Present but unparsable aborts: overwriting a file whose
// contents we cannot read back would destroy user configuration.
func loadTarget(fsys types.FS, path string) (document, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return document{}, nil
		}
		return nil, errors.Wrap(err, errors.ErrFileAccess, "cannot read settings").
			WithDetail("path", path)
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrapf(err, errors.ErrSettingsParse,
			"existing settings file is not valid JSON, refusing to modify it: %s", path).
			WithDetail("path", path)
	}
	return doc, nil
}

func mergeHooks(source, target document, targetPath string, force bool) error {
	rawSource, ok := source[hooksKey]
	if !ok {
		return nil
	}
	sourceHooks, ok := rawSource.(map[string]interface{})
	if !ok {
		return errors.New(errors.ErrKitInvalid, "kit settings hooks must be an object")
	}
	if len(sourceHooks) == 0 {
		return nil
	}

	var targetHooks map[string]interface{}
	if rawTarget, ok := target[hooksKey]; ok {
		targetHooks, ok = rawTarget.(map[string]interface{})
		if !ok {
			return errors.Newf(errors.ErrSettingsType,
				"existing hooks setting is not an object").
				WithDetail("path", targetPath)
		}
	} else {
		targetHooks = map[string]interface{}{}
		target[hooksKey] = targetHooks
	}

	keys := make([]string, 0, len(sourceHooks))
	for k := range sourceHooks {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if _, exists := targetHooks[k]; !exists || force {
			targetHooks[k] = sourceHooks[k]
		}
	}
	return nil
}

func mergeStatusLine(source, target document, force bool) {
	value, ok := source[statusLineKey]
	if !ok {
		return
	}
	if _, exists := target[statusLineKey]; !exists || force {
		target[statusLineKey] = value
	}
}

func ensureAppName(target document, targetPath, appName string, force bool) error {
	var env map[string]interface{}
	if rawEnv, ok := target[envKey]; ok {
		env, ok = rawEnv.(map[string]interface{})
		if !ok {
			return errors.Newf(errors.ErrSettingsType,
				"existing env setting is not an object").
				WithDetail("path", targetPath)
		}
	} else {
		env = map[string]interface{}{}
		target[envKey] = env
	}

	if _, exists := env[AppNameEnvKey]; !exists || force {
		env[AppNameEnvKey] = appName
	}
	return nil
}
