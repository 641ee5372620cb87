package main

import (
	"context"
	"errors"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/sbilibin2017/tcg-trading-api/internal/models"
	"github.com/sbilibin2017/tcg-trading-api/internal/services"
	"github.com/sbilibin2017/tcg-trading-api/internal/sqlerr"
)

// fixtures is the subset of services.FixtureService driven by the commands.
type fixtures interface {
	CreateSchema(ctx context.Context) error
	DropSchema(ctx context.Context) error
	Seed(ctx context.Context) (models.TableCounts, error)
	AddSet(ctx context.Context, name, releaseDate string) (int64, error)
	AddCard(ctx context.Context, req models.CardCreateRequest) (int64, error)
	AddRarity(ctx context.Context, name string) (int64, error)
	CreateUser(ctx context.Context, username, email, password string, isAdmin bool) (int64, error)
	DeleteUser(ctx context.Context, username string) error
}

type opener func(ctx context.Context, configPath string) (fixtures, func(), error)

// errReported marks a failure already printed to the user.
var errReported = errors.New("command failed")

func newRootCmd(open opener) *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "cardctl",
		Short:         "Manage the trading card database",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "config.env", "Path to configuration file")

	// withFixtures opens the database for the duration of one command.
	withFixtures := func(run func(cmd *cobra.Command, args []string, fx fixtures) error) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, args []string) error {
			fx, closeFn, err := open(cmd.Context(), configPath)
			if err != nil {
				cmd.PrintErrln(err)
				return errReported
			}
			defer closeFn()
			return run(cmd, args, fx)
		}
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "create-db",
			Short: "Drop and recreate all tables",
			Args:  cobra.NoArgs,
			RunE: withFixtures(func(cmd *cobra.Command, _ []string, fx fixtures) error {
				if err := fx.CreateSchema(cmd.Context()); err != nil {
					return fail(cmd, "Database error occurred while creating tables", err)
				}
				cmd.Println("Tables created successfully.")
				return nil
			}),
		},
		&cobra.Command{
			Use:   "drop-db",
			Short: "Drop all tables",
			Args:  cobra.NoArgs,
			RunE: withFixtures(func(cmd *cobra.Command, _ []string, fx fixtures) error {
				if err := fx.DropSchema(cmd.Context()); err != nil {
					return fail(cmd, "Database error occurred while dropping tables", err)
				}
				cmd.Println("Tables dropped successfully.")
				return nil
			}),
		},
		&cobra.Command{
			Use:   "seed-db",
			Short: "Replace all rows with the sample data set",
			Args:  cobra.NoArgs,
			RunE: withFixtures(func(cmd *cobra.Command, _ []string, fx fixtures) error {
				counts, err := fx.Seed(cmd.Context())
				if err != nil {
					return fail(cmd, "Error seeding the database", err)
				}
				cmd.Println("Tables seeded successfully.")
				printCounts(cmd, counts)
				return nil
			}),
		},
		&cobra.Command{
			Use:   "add-set NAME RELEASE_DATE",
			Short: "Add a card set, RELEASE_DATE is YYYY-MM-DD",
			Args:  cobra.ExactArgs(2),
			RunE: withFixtures(func(cmd *cobra.Command, args []string, fx fixtures) error {
				name, releaseDate := args[0], args[1]
				if _, err := fx.AddSet(cmd.Context(), name, releaseDate); err != nil {
					if errors.Is(err, services.ErrInvalidDate) {
						cmd.PrintErrln("Invalid date format. Please use YYYY-MM-DD.")
						return errReported
					}
					return fail(cmd, "Error adding set", err)
				}
				cmd.Printf("Set '%s' added successfully with release date %s.\n", name, releaseDate)
				return nil
			}),
		},
		&cobra.Command{
			Use:   "add-card NAME CARD_TYPE RARITY_ID SET_ID",
			Short: "Add a card to the catalog",
			Args:  cobra.ExactArgs(4),
			RunE: withFixtures(func(cmd *cobra.Command, args []string, fx fixtures) error {
				rarityID, err := strconv.ParseInt(args[2], 10, 64)
				if err != nil {
					cmd.PrintErrf("Invalid RARITY_ID %q.\n", args[2])
					return errReported
				}
				setID, err := strconv.ParseInt(args[3], 10, 64)
				if err != nil {
					cmd.PrintErrf("Invalid SET_ID %q.\n", args[3])
					return errReported
				}

				req := models.CardCreateRequest{Name: args[0], CardType: args[1], RarityID: rarityID, SetID: setID}
				if _, err := fx.AddCard(cmd.Context(), req); err != nil {
					if errors.Is(err, services.ErrRarityOrSetNotFound) {
						cmd.PrintErrln("Rarity ID or Set ID not found.")
						return errReported
					}
					return fail(cmd, "Database error occurred while adding card", err)
				}
				cmd.Printf("Card '%s' added successfully.\n", req.Name)
				return nil
			}),
		},
		&cobra.Command{
			Use:   "add-rarity NAME",
			Short: "Add a rarity",
			Args:  cobra.ExactArgs(1),
			RunE: withFixtures(func(cmd *cobra.Command, args []string, fx fixtures) error {
				if _, err := fx.AddRarity(cmd.Context(), args[0]); err != nil {
					return fail(cmd, "Error adding rarity", err)
				}
				cmd.Printf("Rarity '%s' added successfully.\n", args[0])
				return nil
			}),
		},
		newCreateUserCmd(withFixtures),
		&cobra.Command{
			Use:   "delete-user USERNAME",
			Short: "Delete a user and everything the user owns",
			Args:  cobra.ExactArgs(1),
			RunE: withFixtures(func(cmd *cobra.Command, args []string, fx fixtures) error {
				username := args[0]
				if err := fx.DeleteUser(cmd.Context(), username); err != nil {
					if errors.Is(err, services.ErrUserDoesNotExist) {
						cmd.PrintErrf("User '%s' does not exist.\n", username)
						return errReported
					}
					return fail(cmd, "Database error", err)
				}
				cmd.Printf("User '%s' deleted successfully.\n", username)
				return nil
			}),
		},
	)

	return root
}

func newCreateUserCmd(withFixtures func(func(*cobra.Command, []string, fixtures) error) func(*cobra.Command, []string) error) *cobra.Command {
	var admin bool

	cmd := &cobra.Command{
		Use:   "create-user [USERNAME] [EMAIL] [PASSWORD]",
		Short: "Create a user, defaults to user / user@localhost / user",
		Args:  cobra.MaximumNArgs(3),
		RunE: withFixtures(func(cmd *cobra.Command, args []string, fx fixtures) error {
			values := []string{"user", "user@localhost", "user"}
			copy(values, args)
			username, email, password := values[0], values[1], values[2]

			if _, err := fx.CreateUser(cmd.Context(), username, email, password, admin); err != nil {
				if errors.Is(err, services.ErrUserAlreadyExists) {
					cmd.PrintErrf("Error: Email or username '%s' is already registered.\n", email)
					return errReported
				}
				return fail(cmd, "Database error occurred while creating user", err)
			}
			cmd.Printf("User '%s' created successfully.\n", username)
			return nil
		}),
	}
	cmd.Flags().BoolVar(&admin, "admin", false, "Grant the admin flag")
	return cmd
}

// fail prints a database failure with the constraint detail when there is one.
func fail(cmd *cobra.Command, prefix string, err error) error {
	var sqlErr *sqlerr.Error
	if errors.As(err, &sqlErr) {
		cmd.PrintErrf("%s: %s\n", prefix, sqlErr.Error())
		return errReported
	}
	cmd.PrintErrf("%s: %v\n", prefix, err)
	return errReported
}

func printCounts(cmd *cobra.Command, counts models.TableCounts) {
	tables := make([]string, 0, len(counts))
	for table := range counts {
		tables = append(tables, table)
	}
	sort.Strings(tables)
	for _, table := range tables {
		cmd.Printf("  %-11s %d\n", table, counts[table])
	}
}
