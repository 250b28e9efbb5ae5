package cli

import (
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/meigma/flexpath"
)

func newNormalizeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "normalize PATH...",
		Short: "Resolve . and .. segments and print canonical paths",
		Args:  argsBetween(1, -1),
		RunE: func(_ *cobra.Command, args []string) error {
			results := make([]result, 0, len(args))
			for _, raw := range args {
				s, err := flexpath.NormalizePath(raw, a.variant)
				if err != nil {
					return err
				}
				a.logger.Debug("normalized", slog.String("input", raw), slog.String("path", s))
				results = append(results, result{Input: raw, Path: s})
			}
			return writeResults(a.stdout, a.cfg.output, results)
		},
	}
}

func newJoinCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "join FRAGMENT...",
		Short: "Resolve fragments from left to right into one path",
		Long: `join resolves every fragment against the result of the previous ones.
A later absolute fragment replaces everything before it.`,
		Args: argsBetween(1, -1),
		RunE: func(_ *cobra.Command, args []string) error {
			p, err := flexpath.FromFragments(args, a.variant)
			if err != nil {
				return err
			}
			return writeResults(a.stdout, a.cfg.output, []result{pathResult(joinInput(args), p)})
		},
	}
}

func newResolveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve BASE FRAGMENT...",
		Short: "Resolve fragments against a base path",
		Args:  argsBetween(2, -1),
		RunE: func(_ *cobra.Command, args []string) error {
			base, err := flexpath.New(args[0], a.variant)
			if err != nil {
				return err
			}
			p, err := base.ResolveAll(args[1:]...)
			if err != nil {
				return err
			}
			a.logger.Debug("resolved",
				slog.String("base", base.String()),
				slog.Int("fragments", len(args)-1),
				slog.String("path", p.String()))
			return writeResults(a.stdout, a.cfg.output, []result{pathResult(joinInput(args), p)})
		},
	}
}

func newRelativeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "relative FROM TO",
		Short: "Print the relative path leading from one absolute path to another",
		Args:  argsBetween(2, 2),
		RunE: func(_ *cobra.Command, args []string) error {
			from, err := flexpath.New(args[0], a.variant)
			if err != nil {
				return err
			}
			rel, err := from.RelativeTo(args[1])
			if err != nil {
				return err
			}
			return writeResults(a.stdout, a.cfg.output, []result{pathResult(joinInput(args), rel)})
		},
	}
}

func newInfoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "info PATH...",
		Short: "Describe how paths are parsed",
		Args:  argsBetween(1, -1),
		RunE: func(_ *cobra.Command, args []string) error {
			results := make([]result, 0, len(args))
			for _, raw := range args {
				p, err := flexpath.New(raw, a.variant)
				if err != nil {
					return err
				}
				segs := p.Segments()
				if segs == nil {
					segs = []string{}
				}
				info := &details{
					Variant:   p.Variant().String(),
					Absolute:  p.IsAbsolute(),
					Segments:  segs,
					Base:      p.Base(),
					Extension: p.Extension(),
				}
				results = append(results, result{Input: raw, Path: p.String(), Info: info, detailed: true})
			}
			return writeResults(a.stdout, a.cfg.output, results)
		},
	}
}

// joinInput records multi-argument inputs in a result.
func joinInput(args []string) string {
	return strings.Join(args, " ")
}
