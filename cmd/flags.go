package cmd

import (
	"strings"

	"github.com/spf13/pflag"

	"github.com/glanceworks/tododash/internal/clierr"
	"github.com/glanceworks/tododash/internal/config"
)

// groupByValue is a flag value that only accepts recognized grouping
// strategy names, so a typo fails at parse time instead of silently
// falling back to flat output.
type groupByValue string

var _ pflag.Value = (*groupByValue)(nil)

func (v *groupByValue) String() string { return string(*v) }

func (v *groupByValue) Type() string { return "strategy" }

func (v *groupByValue) Set(s string) error {
	for _, valid := range config.ValidGroupByValues() {
		if s == valid {
			*v = groupByValue(s)
			return nil
		}
	}
	return clierr.Newf(clierr.InvalidGroupBy, "unknown grouping %q (valid: %s)",
		s, strings.Join(config.ValidGroupByValues(), ", "))
}
