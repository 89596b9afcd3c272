package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/decigraph/balance"
	"github.com/katalvlaran/decigraph/decision"
	"github.com/katalvlaran/decigraph/edge"
	"github.com/katalvlaran/decigraph/migrate"
)

var checkCmd = &cobra.Command{
	Use:   "check <in.json>",
	Short: "Audit sibling probability groups against the 100% gate",
	Long: "Check imports a snapshot (migrating if needed) and reports, per\n" +
		"decision node with probability-carrying edges, the confidence sum and\n" +
		"the commit-gate verdict. Exits non-zero when any group is out of\n" +
		"tolerance.",
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	raw, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read snapshot: %w", err)
	}

	snap := migrate.Import(raw, slogReporter{log: slog.Default()})
	if snap == nil {
		return fmt.Errorf("import failed for %s (see log for the captured step)", args[0])
	}

	g, err := decision.FromSnapshot(snap)
	if err != nil {
		return err
	}

	bad := 0
	for _, n := range g.Nodes() {
		out, outErr := g.Outgoing(n.ID)
		if outErr != nil {
			return outErr
		}
		rows := make([]balance.Row, 0, len(out))
		for _, e := range out {
			if e.Data.Kind == edge.KindDecisionProbability {
				rows = append(rows, balance.Row{Value: e.Data.ConfidenceOrZero() * balance.Total})
			}
		}
		// A single outgoing probability edge is implicitly 100%.
		if len(rows) < 2 {
			continue
		}
		res := balance.Validate(rows)
		verdict := "ok"
		if !res.Valid {
			verdict = "OUT OF TOLERANCE"
			bad++
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%-24s sum=%6.1f  %s\n", n.ID, res.Sum, verdict)
	}
	if bad > 0 {
		fmt.Fprintf(cmd.OutOrStdout(),
			"hint: rebalance the flagged group(s) with auto-balance at step %g\n",
			cfg.Balance.Step)

		return fmt.Errorf("%d probability group(s) out of tolerance", bad)
	}

	return nil
}
