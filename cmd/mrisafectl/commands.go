package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"mrisafe/internal/delivery/tui"
	"mrisafe/internal/domain/entity"
	domainerrors "mrisafe/internal/domain/errors"
	"mrisafe/internal/errors"
	"mrisafe/internal/infra/dataservice/fixture"
	"mrisafe/internal/query"
	"mrisafe/internal/usecase"
	"mrisafe/internal/util"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func (c *cli) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "mrisafectl",
		Short:         "Look up the MRI safety classification of medical devices",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&c.source, "source", "", "data source override: remote, postgres or fixture")
	flags.BoolVarP(&c.verbose, "verbose", "v", false, "log at debug level to stderr")
	flags.BoolVar(&c.jsonOut, "json", false, "print JSON instead of tables")
	flags.DurationVar(&c.timeout, "timeout", c.timeout, "deadline for a single command")

	root.AddCommand(
		c.searchCommand(),
		c.listCommand(),
		c.showCommand(),
		c.suggestCommand(),
		c.browseCommand(),
		c.exportCommand(),
		c.seedCommand(),
		c.waitlistCommand(),
	)

	return root
}

// withCatalog bootstraps the use cases and bounds fn by the command timeout.
func (c *cli) withCatalog(cmd *cobra.Command, fn func(ctx context.Context) error) error {
	if err := c.bootstrap(cmd.Context(), c); err != nil {
		return err
	}
	defer c.close()

	ctx, cancel := context.WithTimeout(cmd.Context(), c.timeout)
	defer cancel()

	return fn(ctx)
}

func (c *cli) searchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "search <query...>",
		Short: "Search devices by name, model, manufacturer or category",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			q := strings.Join(args, " ")

			return c.withCatalog(cmd, func(ctx context.Context) error {
				devices, err := c.catalog.SearchDevices(ctx, q)
				if err != nil {
					return err
				}

				if c.jsonOut {
					return c.printJSON(map[string]any{
						"query":   q,
						"devices": devices,
						"summary": query.ResultSummary(len(devices), q),
					})
				}

				fmt.Fprintln(c.out, query.ResultSummary(len(devices), q))
				if len(devices) == 0 {
					fmt.Fprintln(c.out, query.EmptyMessage(q))

					return nil
				}
				c.printDevices(devices)

				return nil
			})
		},
	}
}

type filterFlags struct {
	category     int64
	manufacturer int64
	safety       string
	name         string
}

func (f *filterFlags) register(cmd *cobra.Command) {
	cmd.Flags().Int64Var(&f.category, "category", 0, "only devices in this category id")
	cmd.Flags().Int64Var(&f.manufacturer, "manufacturer", 0, "only devices from this manufacturer id")
	cmd.Flags().StringVar(&f.safety, "safety", "", `only devices with this status, e.g. "MR Conditional"`)
	cmd.Flags().StringVar(&f.name, "name", "", "device name substring")
}

func (f *filterFlags) filters() (*entity.SearchFilters, error) {
	filters := &entity.SearchFilters{}
	if f.category > 0 {
		filters.CategoryID = &f.category
	}
	if f.manufacturer > 0 {
		filters.ManufacturerID = &f.manufacturer
	}
	if f.safety != "" {
		status := entity.SafetyStatus(f.safety)
		if !status.IsValid() {
			return nil, domainerrors.ErrValidationFailed.WithDetails("unknown safety status " + strconv.Quote(f.safety))
		}
		filters.SafetyStatus = &status
	}
	if strings.TrimSpace(f.name) != "" {
		filters.Query = &f.name
	}

	return filters, nil
}

func (c *cli) listCommand() *cobra.Command {
	var ff filterFlags

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List devices, optionally filtered",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			filters, err := ff.filters()
			if err != nil {
				return err
			}

			return c.withCatalog(cmd, func(ctx context.Context) error {
				devices, err := c.catalog.ListDevices(ctx, filters)
				if err != nil {
					return err
				}

				if c.jsonOut {
					return c.printJSON(devices)
				}

				fmt.Fprintln(c.out, util.Plural(len(devices), "device", "devices"))
				c.printDevices(devices)

				return nil
			})
		},
	}
	ff.register(cmd)

	return cmd
}

func (c *cli) showCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one device with its safety details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil || id <= 0 {
				return domainerrors.ErrValidationFailed.WithDetails("device id must be a positive integer")
			}

			return c.withCatalog(cmd, func(ctx context.Context) error {
				device, err := c.catalog.GetDevice(ctx, id)
				if err != nil {
					return err
				}

				if c.jsonOut {
					return c.printJSON(device)
				}
				c.printDevice(device)

				return nil
			})
		},
	}
}

// suggestCommand needs no data source; suggestions are derived from the text alone.
func (c *cli) suggestCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "suggest <query...>",
		Short: "Print the search suggestions for a partial query",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			suggestions := query.Suggest(strings.Join(args, " "))
			if c.jsonOut {
				return c.printJSON(suggestions)
			}
			for _, s := range suggestions {
				fmt.Fprintln(c.out, s)
			}

			return nil
		},
	}
}

func (c *cli) browseCommand() *cobra.Command {
	var listing bool

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Interactive search in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := c.bootstrap(cmd.Context(), c); err != nil {
				return err
			}
			defer c.close()

			surface := query.SurfaceInline
			if listing {
				surface = query.SurfaceListing
			}

			ctrl := query.New(surface, c.catalog,
				query.WithLoader(c.catalog),
				query.WithTimeout(c.searchTimeout()),
				query.WithLogger(c.logger),
			)
			defer ctrl.Close()

			program := tea.NewProgram(tui.New(cmd.Context(), ctrl), tea.WithContext(cmd.Context()))
			_, err := program.Run()
			if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
				return errors.Wrap(err, "run terminal ui")
			}

			return nil
		},
	}
	cmd.Flags().BoolVar(&listing, "listing", false, "load the whole catalog and filter it locally")

	return cmd
}

func (c *cli) exportCommand() *cobra.Command {
	var (
		ff     filterFlags
		output string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write matching devices to a spreadsheet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			filters, err := ff.filters()
			if err != nil {
				return err
			}

			return c.withCatalog(cmd, func(ctx context.Context) error {
				devices, err := c.catalog.ListDevices(ctx, filters)
				if err != nil {
					return err
				}

				path := output
				if path == "" {
					path = "mri-devices" + c.exporter.FileExtension()
				}

				f, err := os.Create(path)
				if err != nil {
					return errors.Wrap(err, "create export file")
				}
				if err := c.exporter.ExportDevices(f, devices); err != nil {
					_ = f.Close()

					return errors.Wrap(err, "export devices")
				}
				if err := f.Close(); err != nil {
					return errors.Wrap(err, "close export file")
				}

				size := "unknown size"
				if info, err := os.Stat(path); err == nil {
					size = util.FormatBytes(info.Size())
				}
				fmt.Fprintf(c.out, "Exported %s to %s (%s)\n",
					util.Plural(len(devices), "device", "devices"), path, size)

				return nil
			})
		},
	}
	ff.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default mri-devices.xlsx)")

	return cmd
}

func (c *cli) seedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Write the sample catalog into a writable source",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.withCatalog(cmd, func(ctx context.Context) error {
				started := time.Now()
				report, err := c.seeder.SeedCatalog(ctx, &usecase.CatalogSeed{
					Manufacturers: fixture.Manufacturers(),
					Categories:    fixture.Categories(),
					Devices:       fixture.Devices(),
				})
				if err != nil {
					return err
				}

				if c.jsonOut {
					return c.printJSON(report)
				}
				fmt.Fprintf(c.out, "Seeded %s, %s, %s in %s\n",
					util.Plural(report.Manufacturers, "manufacturer", "manufacturers"),
					util.Plural(report.Categories, "category", "categories"),
					util.Plural(report.Devices, "device", "devices"),
					util.FormatDuration(time.Since(started)))

				return nil
			})
		},
	}
}

func (c *cli) waitlistCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "waitlist",
		Short: "Manage the launch waitlist",
	}

	var source string
	join := &cobra.Command{
		Use:   "join <email>",
		Short: "Add an email to the waitlist",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withCatalog(cmd, func(ctx context.Context) error {
				result, err := c.waitlist.Join(ctx, args[0], source)
				if err != nil {
					return err
				}

				if c.jsonOut {
					return c.printJSON(result)
				}
				fmt.Fprintln(c.out, result.Message)

				return nil
			})
		},
	}
	join.Flags().StringVar(&source, "source", "cli", "where the sign-up came from")

	list := &cobra.Command{
		Use:   "list",
		Short: "List waitlist sign-ups, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.withCatalog(cmd, func(ctx context.Context) error {
				entries, err := c.waitlist.ListEntries(ctx)
				if err != nil {
					return err
				}

				if c.jsonOut {
					return c.printJSON(entries)
				}
				c.printWaitlist(entries)

				return nil
			})
		},
	}

	cmd.AddCommand(join, list)

	return cmd
}
