// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"gsjsprep/internal/issue"
)

var (
	// ErrInvalidExtension is returned when the module extension does not
	// start with a dot.
	ErrInvalidExtension = errors.New("invalid module extension")
	// ErrCategoryOverlap is returned when a module path appears in both
	// export category lists.
	ErrCategoryOverlap = errors.New("module listed in both export categories")
	// ErrInvalidAPIName is returned when a global API name is empty or
	// contains non-identifier characters.
	ErrInvalidAPIName = errors.New("invalid global API name")
)

type (
	// Config is the full preprocessor configuration. The category lists and
	// the global API name set are data, not code: the rewrite pipeline
	// receives them as values and never hardcodes them.
	Config struct {
		// SourceRoot is the root of the GSJS source tree to process.
		SourceRoot string `toml:"source_root" mapstructure:"source_root"`

		// DestRoot is the root the transformed tree is mirrored under.
		// Existing files there are overwritten without prompting.
		DestRoot string `toml:"dest_root" mapstructure:"dest_root"`

		// Extension selects eligible module files (default ".js").
		Extension string `toml:"extension" mapstructure:"extension"`

		// ExcludeDirs are directory names skipped entirely during the walk.
		ExcludeDirs []string `toml:"exclude_dirs" mapstructure:"exclude_dirs"`

		// GlobalExport lists module paths whose functions are registered on
		// the process-wide `global` namespace.
		GlobalExport []string `toml:"global_export" mapstructure:"global_export"`

		// ModuleExport lists module paths whose functions are registered on
		// the module-local `this` namespace.
		ModuleExport []string `toml:"module_export" mapstructure:"module_export"`

		// GlobalAPI names the host-provided api* functions that must be
		// called through the injected `api` object.
		GlobalAPI []string `toml:"global_api" mapstructure:"global_api"`
	}
)

// DefaultConfig returns the stock GSJS configuration: common.js exports
// globally, main.js exports per-module, everything else becomes a
// prototype template, and the API set covers the game server's global
// functions.
func DefaultConfig() *Config {
	return &Config{
		Extension:    ".js",
		ExcludeDirs:  []string{".git"},
		GlobalExport: []string{"common.js"},
		ModuleExport: []string{"main.js"},
		GlobalAPI: []string{
			"NewItem", "NewItemFromSource", "NewItemFromFamiliar", "NewItemFromXY",
			"NewItemStack", "NewItemStackFromSource", "NewItemStackFromFamiliar",
			"NewItemStackFromXY", "FindItemPrototype", "NewProperty", "NewOrderedHash",
			"NewGroup", "NewGroupForHub", "NewLocation", "FindObject",
			"GetObjectContent", "IsPlayerOnline", "NewDC", "NewQuest", "NewOwnedDC",
			"NewOwnedQuest", "FindQuestPrototype", "NewBag", "SendMsgWithEffects",
			"SendMsgWithEffectsX", "SendLocationEventsWithEffects", "SendToAll",
			"SendToAllByCondition", "SendToHub", "SendToGroup", "AsyncHttpCall",
			"LogAction", "AdminLockLocations", "AdminUnlockLocations",
			"GetJSFileObject", "CallMethod", "CallMethodForOnlinePlayers",
			"ExecuteInParallel", "AdminCall", "FindGlobalPath", "FindGlobalPathX",
			"FindShortestGlobalPath", "ReloadDataForGlobalPathFinding", "MD5",
			"GetNLocalOnlinePlayers", "CopyHash", "ResetThreadCPUClock",
			"ResetCPUTimes", "GetCPUTimes", "ResetObjectCreationCounter", "SetIsCopying",
		},
	}
}

// Validate checks the configuration for internal consistency. It does not
// check that the roots exist; the walker owns that precondition.
func (c *Config) Validate() error {
	if !strings.HasPrefix(c.Extension, ".") {
		return issue.NewContext().
			WithOperation("validate configuration").
			WithSuggestion(`Set extension to a value starting with a dot, e.g. ".js"`).
			Wrap(fmt.Errorf("%w: %q", ErrInvalidExtension, c.Extension)).
			BuildError()
	}

	for _, m := range c.GlobalExport {
		if slices.Contains(c.ModuleExport, m) {
			return issue.NewContext().
				WithOperation("validate configuration").
				WithResource(m).
				WithSuggestion("List each module in global_export or module_export, not both").
				Wrap(fmt.Errorf("%w: %s", ErrCategoryOverlap, m)).
				BuildError()
		}
	}

	for _, name := range c.GlobalAPI {
		if !isIdentifier(name) {
			return issue.NewContext().
				WithOperation("validate configuration").
				WithSuggestion("Global API names must be non-empty identifiers, without the api prefix").
				Wrap(fmt.Errorf("%w: %q", ErrInvalidAPIName, name)).
				BuildError()
		}
	}

	return nil
}

// APISet returns the global API names as a set for membership tests.
func (c *Config) APISet() map[string]struct{} {
	set := make(map[string]struct{}, len(c.GlobalAPI))
	for _, name := range c.GlobalAPI {
		set[name] = struct{}{}
	}
	return set
}

// SortedAPINames returns the deduplicated API names in sorted order, for
// stable display output.
func (c *Config) SortedAPINames() []string {
	names := maps.Keys(c.APISet())
	slices.Sort(names)
	return names
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
		default:
			return false
		}
	}
	return true
}
