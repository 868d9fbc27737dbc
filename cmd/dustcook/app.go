package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/hammamikhairi/dustcook/internal/catalog"
	"github.com/hammamikhairi/dustcook/internal/conversation"
	"github.com/hammamikhairi/dustcook/internal/display"
	"github.com/hammamikhairi/dustcook/internal/domain"
	"github.com/hammamikhairi/dustcook/internal/engine"
	"github.com/hammamikhairi/dustcook/internal/inventory"
	"github.com/hammamikhairi/dustcook/internal/logger"
	"github.com/hammamikhairi/dustcook/internal/solver"
)

// surplusWeight matches the in-game bonus for using up overstocked
// ingredients: each surplus member multiplies the score by 1.5.
const surplusWeight = 0.5

type cliApp struct {
	cat      *catalog.Store
	book     *inventory.Book
	engine   *engine.Engine
	solver   *solver.Solver
	parser   *conversation.Parser
	notifier domain.Notifier
	log      *logger.Logger
	ui       *display.UI
	skill    int

	solving *solveFlow // non-nil while a solve dialogue is in progress
}

// solveFlow tracks the two-observation solve dialogue.
type solveFlow struct {
	target string
	with   *domain.Observation // nil until the first dish is entered
}

// Status implements display.StatusSource for the bar.
func (a *cliApp) Status() display.Status {
	mask := a.book.Mask()
	if mask == 0 {
		return display.Status{}
	}
	return display.Status{
		Inventory: len(a.cat.Names(mask)),
		Surplus:   len(a.book.SurplusNames()),
		Unsolved:  len(a.cat.Unsolved(mask)),
	}
}

func (a *cliApp) run(ctx context.Context) {
	if n := a.book.Size(); n > 0 {
		a.ui.PrintHint(fmt.Sprintf("Restored %d carried ingredients from the last session.", n))
	}
	a.ui.PrintInstruction("Stock your inventory with 'inv <ingredient, ...>', then 'top' for the best dishes.")
	a.ui.Println("")

	uiCh := a.ui.InputChan()
	for {
		var input string
		var ok bool

		select {
		case <-ctx.Done():
			return
		case input, ok = <-uiCh:
			if !ok {
				return
			}
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		// An in-progress solve dialogue captures raw lines.
		if a.solving != nil {
			a.continueSolve(ctx, input)
			continue
		}

		cmd := a.parser.Parse(input)
		a.log.Debug("command: %s (args=%v)", cmd.Kind, cmd.Args)
		if done := a.handle(ctx, cmd); done {
			return
		}
	}
}

// handle dispatches one command. Returns true when the app should exit.
func (a *cliApp) handle(ctx context.Context, cmd conversation.Command) bool {
	switch cmd.Kind {
	case conversation.KindHelp:
		a.showHelp()
	case conversation.KindInvShow:
		a.showInventory()
	case conversation.KindInvAdd:
		a.mutateInventory(cmd.Args, a.book.Add, "+")
	case conversation.KindInvRemove:
		a.mutateInventory(cmd.Args, a.book.Remove, "-")
	case conversation.KindInvClear:
		if err := a.book.Clear(); err != nil {
			a.ui.PrintUrgent(fmt.Sprintf("Error: %v", err))
			return false
		}
		a.ui.PrintResult("Inventory cleared.")
	case conversation.KindSurplusShow:
		a.ui.PrintReport("Surplus (score x1.5 per use):")
		a.ui.Println(display.RenderIngredientList(a.book.SurplusNames(), 78))
	case conversation.KindSurplusMark:
		a.mutateInventory(cmd.Args, a.book.MarkSurplus, "surplus +")
	case conversation.KindSurplusUnmark:
		a.mutateInventory(cmd.Args, a.book.UnmarkSurplus, "surplus -")
	case conversation.KindTop:
		a.showReports(ctx, cmd)
	case conversation.KindSolve:
		a.startSolve(cmd.Args[0])
	case conversation.KindSolved:
		a.showSolved()
	case conversation.KindQuit:
		a.ui.PrintHint("Safe travels.")
		return true
	case conversation.KindUnknown:
		if len(cmd.Args) > 0 {
			a.ui.PrintHint(fmt.Sprintf("Didn't catch that: %q. Type 'help' for commands.", cmd.Args[0]))
		}
	}
	return false
}

// mutateInventory applies op to each query and echoes the outcome.
func (a *cliApp) mutateInventory(queries []string, op func(string) (string, error), prefix string) {
	if len(queries) == 0 {
		a.ui.PrintHint("Name at least one ingredient.")
		return
	}
	for _, q := range queries {
		name, err := op(q)
		if err != nil {
			if errors.Is(err, domain.ErrUnknownIngredient) {
				a.ui.PrintUrgent(fmt.Sprintf("No ingredient matches %q.", q))
			} else {
				a.ui.PrintUrgent(fmt.Sprintf("Error: %v", err))
			}
			continue
		}
		a.ui.PrintResult(fmt.Sprintf("%s %s", prefix, name))
	}
}

func (a *cliApp) showInventory() {
	names := a.book.Names()
	a.ui.PrintReport(fmt.Sprintf("Carrying %d ingredients:", len(names)))
	a.ui.Println(display.RenderIngredientList(names, 78))

	if surplus := a.book.SurplusNames(); len(surplus) > 0 {
		a.ui.PrintHint("Surplus: " + strings.Join(surplus, ", "))
	}
	mask := a.book.Mask()
	if mask == 0 {
		return
	}
	if unsolved := a.cat.Unsolved(mask); len(unsolved) > 0 {
		a.ui.PrintUrgent("Unsolved stats: " + strings.Join(unsolved, ", "))
		a.ui.PrintHint("Reports treat unsolved ingredients as zero. Use 'solve <name>' to fix.")
	}
}

func (a *cliApp) showReports(ctx context.Context, cmd conversation.Command) {
	inv := a.book.Mask()
	if inv == 0 {
		a.ui.PrintHint("Inventory is empty. Add ingredients with 'inv <name, ...>' first.")
		return
	}

	if unsolved := a.cat.Unsolved(inv); len(unsolved) > 0 {
		a.notifier.NotifyUrgent(ctx, fmt.Sprintf(
			"  %d carried ingredients have unsolved stats; rankings may be off.", len(unsolved)))
	}

	jobs := a.engine.Enumerate(inv)
	if len(jobs) == 0 {
		a.ui.PrintHint("No recipe can be filled from this inventory.")
		return
	}

	objectives := []engine.Objective{engine.ObjectiveRoad, engine.ObjectiveSale}
	if contains(cmd.Args, "road") && !contains(cmd.Args, "sale") {
		objectives = objectives[:1]
	} else if contains(cmd.Args, "sale") && !contains(cmd.Args, "road") {
		objectives = objectives[1:]
	}

	opts := []engine.RankOption{
		engine.WithSurplus(a.book.SurplusMask(), surplusWeight),
		engine.WithCookingSkill(a.skill),
	}
	for _, obj := range objectives {
		ranked := a.engine.Rank(jobs, obj, cmd.N, opts...)
		title := fmt.Sprintf("Best dishes for the road (%d of %d cookjobs):", len(ranked), len(jobs))
		if obj == engine.ObjectiveSale {
			title = fmt.Sprintf("Best dishes to sell (%d of %d cookjobs):", len(ranked), len(jobs))
		}
		a.ui.Println(display.RenderRanking(title, ranked))
		a.ui.Println("")
	}
}

func (a *cliApp) showSolved() {
	var solved, unsolved []string
	for _, ing := range a.cat.All() {
		if ing.Solved {
			solved = append(solved, ing.Name)
		} else {
			unsolved = append(unsolved, ing.Name)
		}
	}
	a.ui.PrintReport(fmt.Sprintf("Solved (%d):", len(solved)))
	a.ui.Println(display.RenderIngredientList(solved, 78))
	a.ui.PrintReport(fmt.Sprintf("Unsolved (%d):", len(unsolved)))
	a.ui.Println(display.RenderIngredientList(unsolved, 78))
}

// ── Solve dialogue ───────────────────────────────────────────────

func (a *cliApp) startSolve(query string) {
	name, err := a.book.Resolve(query)
	if err != nil {
		a.ui.PrintUrgent(fmt.Sprintf("No ingredient matches %q.", query))
		return
	}
	ing, _ := a.cat.Get(name)
	if ing.Solved {
		a.ui.PrintHint(fmt.Sprintf("%s is already solved (%d/%d/%d). A new solve will override it.",
			name, ing.Stats.Hunger, ing.Stats.Stress, ing.Stats.Sell))
	}

	a.solving = &solveFlow{target: name}
	a.ui.PrintReport(fmt.Sprintf("Solving %s.", name))
	a.suggestPairs(name)
	a.ui.PrintInstruction("Cook a dish WITH it and enter: ingredient, ingredient, ... = hunger stress sell")
	a.ui.PrintHint("('cancel' aborts)")
}

// suggestPairs lists cookjob pairs from the current inventory that differ
// only by the target, the cheapest way to isolate it in two cooks.
func (a *cliApp) suggestPairs(name string) {
	bit, err := a.cat.Bit(name)
	if err != nil {
		return
	}
	jobs := a.engine.Enumerate(a.book.Mask() | bit)
	pairs := solver.IsolationPairs(bit, jobs)
	if len(pairs) == 0 {
		return
	}
	a.ui.PrintHint("Isolation pairs from your inventory:")
	for i, p := range pairs {
		if i == 3 {
			a.ui.PrintHint(fmt.Sprintf("  ... and %d more", len(pairs)-i))
			break
		}
		a.ui.PrintHint(fmt.Sprintf("  %s [%s]  vs  %s [%s]",
			p.With.Recipe, strings.Join(p.With.Ingredients, ", "),
			p.Without.Recipe, strings.Join(p.Without.Ingredients, ", ")))
	}
}

func (a *cliApp) continueSolve(ctx context.Context, input string) {
	if strings.EqualFold(input, "cancel") {
		a.solving = nil
		a.ui.PrintHint("Solve cancelled.")
		return
	}

	obs, err := a.parseObservation(input)
	if err != nil {
		a.ui.PrintUrgent(fmt.Sprintf("Error: %v", err))
		a.ui.PrintHint("Format: ingredient, ingredient, ... = hunger stress sell")
		return
	}

	flow := a.solving
	if flow.with == nil {
		flow.with = &obs
		a.ui.PrintInstruction("Now a dish WITHOUT it (same dish minus the ingredient, or a solved substitute):")
		return
	}

	stats, err := a.solver.Solve(flow.target, *flow.with, obs)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation):
			a.ui.PrintUrgent(fmt.Sprintf("Those dishes don't isolate %s: %v", flow.target, err))
		case errors.Is(err, domain.ErrUnsolvedIngredient):
			a.ui.PrintUrgent(fmt.Sprintf("Error: %v", err))
			a.ui.PrintHint("Solve the substitute first, then retry.")
		default:
			a.ui.PrintUrgent(fmt.Sprintf("Error: %v", err))
		}
		// Keep the with-dish; the user can re-enter the without-dish.
		return
	}

	a.solving = nil
	a.notifier.Notify(ctx, fmt.Sprintf("  %s solved: hunger %d, stress %d, sell %d",
		flow.target, stats.Hunger, stats.Stress, stats.Sell))
}

// parseObservation reads "ing, ing, ... = h s v". Ingredient queries resolve
// through the same fuzzy matching the inventory commands use.
func (a *cliApp) parseObservation(input string) (domain.Observation, error) {
	left, right, found := strings.Cut(input, "=")
	if !found {
		return domain.Observation{}, fmt.Errorf("missing '='")
	}

	fields := strings.Fields(right)
	if len(fields) != 3 {
		return domain.Observation{}, fmt.Errorf("expected three numbers after '=', got %d", len(fields))
	}
	var nums [3]int
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return domain.Observation{}, fmt.Errorf("%q is not a number", f)
		}
		nums[i] = n
	}

	var obs domain.Observation
	for _, part := range strings.Split(left, ",") {
		q := strings.TrimSpace(part)
		if q == "" {
			continue
		}
		name, err := a.book.Resolve(q)
		if err != nil {
			return domain.Observation{}, fmt.Errorf("no ingredient matches %q", q)
		}
		obs.Ingredients = append(obs.Ingredients, name)
	}
	if len(obs.Ingredients) == 0 {
		return domain.Observation{}, fmt.Errorf("no ingredients before '='")
	}

	obs.Stats = domain.Stats{Hunger: nums[0], Stress: nums[1], Sell: nums[2]}
	return obs, nil
}

func (a *cliApp) showHelp() {
	a.ui.PrintReport("Commands:")
	a.ui.PrintInstruction("  inv                     Show carried ingredients")
	a.ui.PrintInstruction("  inv <name, name, ...>   Add ingredients (fuzzy names ok)")
	a.ui.PrintInstruction("  inv rm <name, ...>      Remove ingredients")
	a.ui.PrintInstruction("  inv clear               Empty the inventory")
	a.ui.PrintInstruction("  surplus                 Show surplus ingredients")
	a.ui.PrintInstruction("  surplus <name, ...>     Mark ingredients surplus (weights reports)")
	a.ui.PrintInstruction("  surplus rm <name, ...>  Unmark surplus")
	a.ui.PrintInstruction("  top [road|sale] [N]     Rank cookable dishes (default both, top 10)")
	a.ui.PrintInstruction("  solve <name>            Derive an ingredient's stats from two cooked dishes")
	a.ui.PrintInstruction("  solved                  List solved and unsolved ingredients")
	a.ui.PrintInstruction("  help                    Show this message")
	a.ui.PrintInstruction("  quit                    Exit")
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
