package cli

import (
	"strconv"

	"gopkg.in/alecthomas/kingpin.v2"

	"xcstringstool/internal/config"
)

const (
	CommandPrint   = "print"
	CommandCompile = "compile"
	CommandSync    = "sync"
)

// Invocation is a parsed command line.
type Invocation struct {
	Command    string
	ConfigPath string
	Input      string
	Overrides  config.Overrides
}

// NewApp declares the command-line interface, binding every flag into inv.
func NewApp(version string, inv *Invocation) *kingpin.Application {
	app := kingpin.New("xcstringstool", "Work with .xcstrings files.").Version(version)
	app.Flag("config", "Path to a TOML configuration file.").Short('c').StringVar(&inv.ConfigPath)

	printCmd := app.Command(CommandPrint, "Prints all string keys represented in an xcstrings file.")
	printCmd.Arg("input-file", "The .xcstrings file to print.").Required().StringVar(&inv.Input)

	o := &inv.Overrides
	compileCmd := app.Command(CommandCompile, "Produces build products for an .xcstrings file.")
	compileCmd.Arg("input-file", "The .xcstrings file to compile.").Required().StringVar(&inv.Input)
	compileCmd.Flag("output-directory", "The directory to place <locale>.lproj folders in.").Short('o').StringVar(&o.OutputDirectory)
	compileCmd.Flag("format", "Output format (strings).").Short('f').StringVar(&o.Format)
	compileCmd.Flag("language", "Language to compile, repeatable. Defaults to every language in the catalog.").Short('l').StringsVar(&o.Languages)
	compileCmd.Flag("serialization-format", "Property list encoding: text or binary.").StringVar(&o.Serialization)
	compileCmd.Flag("variants", "Plural and device variations: expand into key.category entries, or skip.").StringVar(&o.Variants)
	compileCmd.Flag("table", "Strings table name.").StringVar(&o.Table)
	compileCmd.Flag("dry-run", "Resolve and report without writing files. --no-dry-run overrides a configured dry run.").SetValue(&optionalBool{dst: &o.DryRun})

	app.Command(CommandSync, "Updates an .xcstrings file based on .stringsdata files.")

	return app
}

// Parse parses args (without the program name).
func Parse(version string, args []string) (*Invocation, error) {
	inv := &Invocation{}
	cmd, err := NewApp(version, inv).Parse(args)
	if err != nil {
		return nil, err
	}
	inv.Command = cmd
	return inv, nil
}

// optionalBool is a boolean flag that stays nil unless given, so that
// --no-dry-run can be told apart from an absent flag.
type optionalBool struct {
	dst **bool
}

func (b *optionalBool) Set(s string) error {
	v, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	*b.dst = &v
	return nil
}

func (b *optionalBool) String() string {
	if *b.dst == nil {
		return "false"
	}
	return strconv.FormatBool(**b.dst)
}

func (b *optionalBool) IsBoolFlag() bool { return true }
