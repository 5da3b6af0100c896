package menu

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"time"

	"github.com/rcypher/bidsort/internal/config"
	"github.com/rcypher/bidsort/internal/loader"
	"github.com/rcypher/bidsort/internal/model"
	"github.com/rcypher/bidsort/internal/sorting"
)

// Menu choices.
const (
	choiceLoad      = 1
	choiceDisplay   = 2
	choiceSelection = 3
	choiceQuick     = 4
	choiceExit      = 9
)

// Runner drives the interactive loop. It exclusively owns the in-memory bid
// sequence; a load replaces it wholesale and the sorts rearrange it in place.
type Runner struct {
	cfg    config.InputConfig
	logger *slog.Logger
	in     *bufio.Scanner
	out    io.Writer

	bids []model.Bid

	// Hooks for tests
	now  func() time.Time
	load func(config.InputConfig, *slog.Logger) model.Result
}

// New creates a Runner reading menu choices from in and writing to out.
func New(cfg config.InputConfig, logger *slog.Logger, in io.Reader, out io.Writer) *Runner {
	sc := bufio.NewScanner(in)
	sc.Split(bufio.ScanWords)
	return &Runner{
		cfg:    cfg,
		logger: logger,
		in:     sc,
		out:    out,
		now:    time.Now,
		load:   loader.Load,
	}
}

// Run loops until the exit choice is entered or input ends. Unrecognized
// input re-displays the menu without comment. Always returns nil so the
// process exits 0 regardless of what happened inside the loop.
func (r *Runner) Run() error {
	for {
		r.printMenu()

		token, ok := r.next()
		if !ok {
			break
		}
		choice, err := strconv.Atoi(token)
		if err != nil {
			continue
		}

		switch choice {
		case choiceLoad:
			r.timed(r.doLoad, "bids read")
		case choiceDisplay:
			r.doDisplay()
		case choiceSelection:
			r.timed(r.doSelectionSort, "bids sorted")
		case choiceQuick:
			r.timed(r.doQuickSort, "bids sorted")
		case choiceExit:
			fmt.Fprintln(r.out, "Good bye.")
			return nil
		}
	}

	fmt.Fprintln(r.out, "Good bye.")
	return nil
}

func (r *Runner) printMenu() {
	fmt.Fprintln(r.out, "Menu:")
	fmt.Fprintln(r.out, "  1. Load Bids")
	fmt.Fprintln(r.out, "  2. Display All Bids")
	fmt.Fprintln(r.out, "  3. Selection Sort All Bids")
	fmt.Fprintln(r.out, "  4. Quick Sort All Bids")
	fmt.Fprintln(r.out, "  9. Exit")
	fmt.Fprint(r.out, "Enter choice: ")
}

func (r *Runner) next() (string, bool) {
	if !r.in.Scan() {
		return "", false
	}
	return r.in.Text(), true
}

// timed runs op, then reports the record count and elapsed time in raw
// nanosecond ticks and in seconds.
func (r *Runner) timed(op func(), what string) {
	start := r.now()
	op()
	elapsed := r.now().Sub(start)

	fmt.Fprintf(r.out, "%d %s\n", len(r.bids), what)
	fmt.Fprintf(r.out, "time: %d clock ticks\n", elapsed.Nanoseconds())
	fmt.Fprintf(r.out, "time: %f seconds\n", elapsed.Seconds())
}

func (r *Runner) doLoad() {
	res := r.load(r.cfg, r.logger)
	r.bids = res.Bids
}

func (r *Runner) doDisplay() {
	for _, b := range r.bids {
		fmt.Fprintln(r.out, b)
	}
	fmt.Fprintln(r.out)
}

func (r *Runner) doSelectionSort() {
	sorting.Selection(r.bids)
}

func (r *Runner) doQuickSort() {
	sorting.Quick(r.bids)
}
