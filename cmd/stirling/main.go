// Command stirling enumerates flattened Stirling permutations and Type-B
// partitions and checks the bijection between them.
//
// Usage:
//
//	stirling list -n 4 [-k 3] [--all]
//	stirling count -n 5 [--all]
//	stirling table --max-n 5 --max-k 5
//	stirling partitions -n 2
//	stirling verify --max-n 6
//	stirling reduce 113322
//	stirling build '0|(-2)1'
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"

	"github.com/katalvlaran/lvstirling/internal/logging"
)

const version = "0.1.0"

// CLI defines the command-line interface.
type CLI struct {
	LogLevel  string `name:"log-level" default:"info" enum:"debug,info,warn,error" help:"Log level (debug, info, warn, error)"`
	LogFormat string `name:"log-format" default:"text" enum:"text,json" help:"Log format (text, json)"`

	List       ListCmd       `cmd:"" help:"Print permutations, one per line"`
	Count      CountCmd      `cmd:"" help:"Count permutations by number of runs"`
	Table      TableCmd      `cmd:"" help:"Count flattened k-Stirling permutations over n and k"`
	Partitions PartitionsCmd `cmd:"" help:"Print Type-B partitions with their reduced form and Stirling image"`
	Verify     VerifyCmd     `cmd:"" help:"Check generator agreement and the bijection round trip"`
	Reduce     ReduceCmd     `cmd:"" help:"Map a flattened Stirling permutation to its Type-B partition"`
	Build      BuildCmd      `cmd:"" help:"Map a reduced Type-B partition to its Stirling permutation"`
	Version    VersionCmd    `cmd:"" help:"Print version information"`
}

// Env is bound into every command's Run method.
type Env struct {
	Out io.Writer
}

// exitCode carries a kong exit request out of the parser.
type exitCode int

// run parses args and executes the selected command, writing results and
// help to out and logs and parse errors to logOut. A kong exit request
// (e.g. after --help) ends run instead of the process.
func run(args []string, out, logOut io.Writer) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		code, ok := r.(exitCode)
		if !ok {
			panic(r)
		}
		if code != 0 {
			err = fmt.Errorf("exit status %d", int(code))
		}
	}()

	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("stirling"),
		kong.Description("Flattened Stirling permutations and Type-B set partitions."),
		kong.UsageOnError(),
		kong.Writers(out, logOut),
		kong.Exit(func(code int) { panic(exitCode(code)) }),
	)
	if err != nil {
		return err
	}

	ctx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level, err := logging.ParseLevel(cli.LogLevel)
	if err != nil {
		return err
	}
	format, err := logging.ParseFormat(cli.LogFormat)
	if err != nil {
		return err
	}
	logging.Init(logOut, level, format)

	return ctx.Run(&Env{Out: out})
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		logging.Logger().Error("command failed", "error", err)
		os.Exit(1)
	}
}
