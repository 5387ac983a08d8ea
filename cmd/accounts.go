package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/glanceworks/tododash/internal/account"
	"github.com/glanceworks/tododash/internal/clierr"
	"github.com/glanceworks/tododash/internal/config"
	"github.com/glanceworks/tododash/internal/output"
)

var (
	flagAccountToken    string
	flagAccountColor    string
	flagAccountCategory string
	flagAccountSymbol   string
)

var accountsCmd = &cobra.Command{
	Use:   "accounts",
	Short: "Manage upstream accounts for an instance",
}

var accountsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List configured accounts",
	RunE:  runAccountsList,
}

var accountsAddCmd = &cobra.Command{
	Use:   "add NAME",
	Short: "Add an account",
	Long: `Adds an account to the selected instance. The API token is taken from
--token, or from the TODOIST_TOKEN environment variable when the flag is
not set.`,
	Args: cobra.ExactArgs(1),
	RunE: runAccountsAdd,
}

var accountsRemoveCmd = &cobra.Command{
	Use:   "remove TOKEN",
	Short: "Remove the account with the given token",
	Args:  cobra.ExactArgs(1),
	RunE:  runAccountsRemove,
}

func init() {
	accountsAddCmd.Flags().StringVar(&flagAccountToken, "token", "", "API token (defaults to $TODOIST_TOKEN)")
	accountsAddCmd.Flags().StringVar(&flagAccountColor, "color", "", "attribution color, e.g. #e84c3d")
	accountsAddCmd.Flags().StringVar(&flagAccountCategory, "category", "", "category tag, e.g. work")
	accountsAddCmd.Flags().StringVar(&flagAccountSymbol, "symbol", config.DefaultSymbol, "symbol/icon reference")

	accountsCmd.AddCommand(accountsListCmd, accountsAddCmd, accountsRemoveCmd)
	rootCmd.AddCommand(accountsCmd)
}

func accountStore() (*account.Store, error) {
	dir, err := resolveDir()
	if err != nil {
		return nil, err
	}
	return account.NewStore(dir, flagInstance), nil
}

func runAccountsList(_ *cobra.Command, _ []string) error {
	store, err := accountStore()
	if err != nil {
		return err
	}
	accounts, err := store.Load()
	if err != nil {
		return err
	}

	if outputFormat() == output.FormatJSON {
		// Tokens stay redacted even in machine output.
		type redacted struct {
			Token    string `json:"token"`
			Name     string `json:"name"`
			Color    string `json:"color,omitempty"`
			Category string `json:"category,omitempty"`
			Symbol   string `json:"symbol,omitempty"`
		}
		rows := make([]redacted, len(accounts))
		for i, a := range accounts {
			rows[i] = redacted{Token: a.Redacted(), Name: a.Name, Color: a.Color, Category: a.Category, Symbol: a.Symbol}
		}
		return output.JSON(os.Stdout, rows)
	}

	for _, a := range accounts {
		output.Messagef(os.Stdout, "%s (%s) category=%s", a.DisplayName(), a.Redacted(), a.Category)
	}
	if len(accounts) == 0 {
		output.Messagef(os.Stdout, "No accounts configured. Run 'tododash accounts add'.")
	}
	return nil
}

func runAccountsAdd(_ *cobra.Command, args []string) error {
	token := flagAccountToken
	if token == "" {
		token = os.Getenv("TODOIST_TOKEN")
	}
	if token == "" {
		return clierr.New(clierr.InvalidInput, "no API token: pass --token or set TODOIST_TOKEN")
	}

	store, err := accountStore()
	if err != nil {
		return err
	}
	a := account.Account{
		Token:    token,
		Name:     args[0],
		Color:    flagAccountColor,
		Category: flagAccountCategory,
		Symbol:   flagAccountSymbol,
	}
	if err := store.Add(a); err != nil {
		return err
	}
	output.Messagef(os.Stdout, "Added account %s (%s)", a.DisplayName(), a.Redacted())
	return nil
}

func runAccountsRemove(_ *cobra.Command, args []string) error {
	store, err := accountStore()
	if err != nil {
		return err
	}
	if err := store.Remove(args[0]); err != nil {
		return err
	}
	output.Messagef(os.Stdout, "Removed account")
	return nil
}
