// Package bagcli holds the commands of the bag command line tool.
package bagcli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"go.llib.dev/frameless/pkg/cli"
	"go.llib.dev/frameless/pkg/convkit"
	"go.llib.dev/frameless/pkg/errorkit"
	"go.llib.dev/frameless/pkg/logger"
	"go.llib.dev/frameless/pkg/logging"
	"go.llib.dev/frameless/pkg/zerokit"
)

func NewMux(c Config) *cli.Mux {
	var m cli.Mux
	m.Handle("run", RunCommand{Separator: c.Separator})
	m.Handle("stores", StoresCommand{})
	return &m
}

// RunCommand builds a bag over the chosen store kind, fills it, erases values from it,
// and prints the result.
type RunCommand struct {
	Store       string `flag:"store,s" env:"BAG_STORE" desc:"backing store kind, see the stores command"`
	Values      string `flag:"values,v" desc:"values to insert, in order"`
	Erase       string `flag:"erase,e" desc:"values to erase, every copy of each is removed"`
	InsertFront string `flag:"insert-front" desc:"value to insert at the front position after the inserts"`

	// Separator splits the list flags.
	Separator string
}

func (cmd RunCommand) Summary() string { return "insert and erase values, then print the bag" }

func (cmd RunCommand) ServeCLI(w cli.ResponseWriter, r *cli.Request) {
	ctx := r.Context()
	name := zerokit.Coalesce(cmd.Store, DefaultStore)

	s, err := Open(name)
	if err != nil {
		logger.Error(ctx, "failed to open the bag", logging.Field("store", name), logging.ErrField(err))
		writeError(w, err)
		return
	}

	values, err := cmd.parseList("values", cmd.Values)
	if err != nil {
		writeError(w, err)
		return
	}
	erase, err := cmd.parseList("erase", cmd.Erase)
	if err != nil {
		writeError(w, err)
		return
	}

	for _, v := range values {
		s.Add(v)
	}
	logger.Debug(ctx, "values inserted", logging.Field("store", name), logging.Field("count", len(values)))

	if cmd.InsertFront != "" {
		v, err := convkit.Parse[int](cmd.InsertFront)
		if err != nil {
			writeError(w, ErrInvalidValue.F("insert-front: %q", cmd.InsertFront))
			return
		}
		s.AddFront(v)
	}

	var removed int
	for _, v := range erase {
		removed += s.Remove(v)
	}
	logger.Info(ctx, "bag ready",
		logging.Field("store", name),
		logging.Field("size", s.Len()),
		logging.Field("removed", removed))

	fmt.Fprintf(w, "store: %s\n", name)
	fmt.Fprintf(w, "size: %d\n", s.Len())
	if s.Empty() {
		fmt.Fprintln(w, "empty")
		return
	}
	fmt.Fprintf(w, "front: %d\n", s.Front())
	fmt.Fprintf(w, "back: %d\n", s.Back())
	fmt.Fprintf(w, "contents: %s\n", joinInts(s.Slice()))
}

func (cmd RunCommand) parseList(flag, raw string) ([]int, error) {
	if raw == "" {
		return nil, nil
	}
	vs, err := convkit.Parse[[]int](raw, convkit.Options{Separator: zerokit.Coalesce(cmd.Separator, ",")})
	if err != nil {
		return nil, ErrInvalidValue.F("%s: %q", flag, raw)
	}
	return vs, nil
}

// StoresCommand prints every store kind with the capabilities the bag finds on it.
type StoresCommand struct{}

func (cmd StoresCommand) Summary() string { return "list the store kinds and their capabilities" }

func (cmd StoresCommand) ServeCLI(w cli.ResponseWriter, r *cli.Request) {
	table := [][]string{{"STORE", "DESCRIPTION", "CAPABILITIES"}}
	for _, kind := range StoreKinds() {
		s, err := kind.Open()
		if err != nil {
			logger.Warn(r.Context(), "store kind can't be opened", logging.Field("store", kind.Name), logging.ErrField(err))
			continue
		}
		table = append(table, []string{kind.Name, kind.Summary, s.Capabilities().String()})
	}
	if err := cli.FPrintTable(w, table); err != nil {
		logger.Error(r.Context(), "failed to print the store table", logging.ErrField(err))
		writeError(w, err)
	}
}

// writeError reports err on the error output of w when it has one,
// and sets the exit code. Bad user input exits with cli.ExitCodeBadRequest.
func writeError(w cli.ResponseWriter, err error) {
	code := cli.ExitCodeError
	if errors.Is(err, ErrUnknownStore) || errors.Is(err, ErrInvalidValue) {
		code = cli.ExitCodeBadRequest
	}
	w.ExitCode(code)

	var out io.Writer = w
	if ew, ok := w.(cli.ErrorWriter); ok && ew.Stderr() != nil {
		out = ew.Stderr()
	}
	fmt.Fprintln(out, errorkit.WithoutTrace(err).Error())
}

func joinInts(vs []int) string {
	var parts = make([]string, 0, len(vs))
	for _, v := range vs {
		parts = append(parts, fmt.Sprint(v))
	}
	return strings.Join(parts, ",")
}
