package testing

import (
	"strconv"
	"strings"

	"github.com/bitrise-io/go-utils/v2/command"
	"github.com/bitrise-io/go-utils/v2/env"
)

// FakeResult is the canned outcome of one fake command invocation.
type FakeResult struct {
	Output string
	Err    error
}

// FakeCommand is a recorded command.Command that returns a canned result.
type FakeCommand struct {
	Name   string
	Args   []string
	Opts   *command.Opts
	Result FakeResult
}

func (c *FakeCommand) PrintableCommandArgs() string {
	quoted := []string{c.Name}
	for _, a := range c.Args {
		quoted = append(quoted, strconv.Quote(a))
	}
	return strings.Join(quoted, " ")
}

func (c *FakeCommand) Run() error { return c.Result.Err }

func (c *FakeCommand) RunAndReturnExitCode() (int, error) {
	if c.Result.Err != nil {
		return 1, c.Result.Err
	}
	return 0, nil
}

func (c *FakeCommand) RunAndReturnTrimmedOutput() (string, error) {
	return strings.TrimSpace(c.Result.Output), c.Result.Err
}

func (c *FakeCommand) RunAndReturnTrimmedCombinedOutput() (string, error) {
	return strings.TrimSpace(c.Result.Output), c.Result.Err
}

func (c *FakeCommand) Start() error { return c.Result.Err }
func (c *FakeCommand) Wait() error  { return nil }

var _ command.Command = (*FakeCommand)(nil)

// FakeCommandFactory records every command created through it and hands out
// canned results keyed by the space-joined command line.
type FakeCommandFactory struct {
	Commands []*FakeCommand
	Results  map[string]FakeResult
}

func (f *FakeCommandFactory) Create(name string, args []string, opts *command.Opts) command.Command {
	cmd := &FakeCommand{Name: name, Args: args, Opts: opts}
	if f.Results != nil {
		key := strings.Join(append([]string{name}, args...), " ")
		cmd.Result = f.Results[key]
	}
	f.Commands = append(f.Commands, cmd)
	return cmd
}

var _ command.Factory = (*FakeCommandFactory)(nil)

// CommandLines returns the executed command lines in invocation order.
func (f *FakeCommandFactory) CommandLines() []string {
	lines := make([]string, 0, len(f.Commands))
	for _, c := range f.Commands {
		lines = append(lines, strings.Join(append([]string{c.Name}, c.Args...), " "))
	}
	return lines
}

// FakeEnvRepository is an in-memory env.Repository.
type FakeEnvRepository struct {
	Values map[string]string
}

func NewFakeEnvRepository() *FakeEnvRepository {
	return &FakeEnvRepository{Values: map[string]string{}}
}

func (r *FakeEnvRepository) Get(key string) string { return r.Values[key] }

func (r *FakeEnvRepository) Set(key, value string) error {
	r.Values[key] = value
	return nil
}

func (r *FakeEnvRepository) Unset(key string) error {
	delete(r.Values, key)
	return nil
}

func (r *FakeEnvRepository) List() []string {
	var out []string
	for k, v := range r.Values {
		out = append(out, k+"="+v)
	}
	return out
}

var _ env.Repository = (*FakeEnvRepository)(nil)
