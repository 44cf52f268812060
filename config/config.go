// Package config loads the run configuration of the duet command.
package config

import (
	"errors"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"

	"github.com/ezrec/duet/translate"
)

var f = translate.From

const (
	MODE_RECOVER = "recover" // First recovered sound of a single program.
	MODE_DUET    = "duet"    // Two programs, count of values sent by the second.
	MODE_DRAIN   = "drain"   // Values sent by a single program until it waits.
)

var (
	ErrConfigInvalid = errors.New(f("config invalid"))
)

// schema validates, and supplies the defaults of, a configuration.
const schema = `
#Config: {
	mode:    *"duet" | "recover" | "drain"
	program: *"-" | string
	ids:     *[0, 1] | [int, int]
	verbose: *false | bool
	journal: *false | bool
	equates: {[string]: string}
}
`

// Config of a run.
type Config struct {
	Mode    string            `json:"mode"`    // One of the MODE_ constants.
	Program string            `json:"program"` // Listing path, or "-" for stdin.
	Ids     []int64           `json:"ids"`     // Program ids of the duet, always two.
	Verbose bool              `json:"verbose"` // Verbose logging.
	Journal bool              `json:"journal"` // Also log to the systemd journal.
	Equates map[string]string `json:"equates"` // Assembler predefines.
}

// Default returns the configuration used without a file.
func Default() (cfg Config) {
	cfg, err := Parse("", nil)
	if err != nil {
		panic(err)
	}
	return
}

// Load reads and validates a CUE configuration file.
func Load(path string) (cfg Config, err error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return
	}

	return Parse(path, content)
}

// Parse validates CUE configuration source. The filename is only used in
// error messages.
func Parse(filename string, src []byte) (cfg Config, err error) {
	ctx := cuecontext.New()

	def := ctx.CompileString(schema).LookupPath(cue.ParsePath("#Config"))
	if err = def.Err(); err != nil {
		return
	}

	value := ctx.CompileBytes(src, cue.Filename(filename))
	if err = value.Err(); err != nil {
		err = errors.Join(ErrConfigInvalid, err)
		return
	}

	value = def.Unify(value)
	if err = value.Validate(cue.Concrete(true)); err != nil {
		err = errors.Join(ErrConfigInvalid, err)
		return
	}

	if err = value.Decode(&cfg); err != nil {
		err = errors.Join(ErrConfigInvalid, err)
		return
	}

	return
}
