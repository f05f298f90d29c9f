package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// adminCmd represents the admin command.
var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Manage the admin account",
}

var (
	adminUsername      string
	adminPasswordStdin bool
)

var adminSetPasswordCmd = &cobra.Command{
	Use:   "set-password",
	Short: "Create or replace the admin account",
	Long: `Creates the admin account, or replaces it. The password is prompted
for without echo, or read from the first line of stdin with --password-stdin.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		password, err := readPassword(cmd)
		if err != nil {
			return err
		}

		app, err := openApp(cmd.Context())
		if err != nil {
			return err
		}
		defer func() { _ = app.Close(cmd.Context()) }()

		if err := app.Auth.ProvisionAdmin(cmd.Context(), adminUsername, password); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "admin account %q saved\n", adminUsername)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(adminCmd)
	adminCmd.AddCommand(adminSetPasswordCmd)

	adminSetPasswordCmd.Flags().StringVar(&adminUsername, "username", "", "admin username")
	adminSetPasswordCmd.Flags().BoolVar(&adminPasswordStdin, "password-stdin", false, "read the password from stdin")
	_ = adminSetPasswordCmd.MarkFlagRequired("username")
}

func readPassword(cmd *cobra.Command) (string, error) {
	if adminPasswordStdin {
		return readPasswordLine(cmd.InOrStdin())
	}

	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", errors.New("stdin is not a terminal; use --password-stdin")
	}

	out := cmd.ErrOrStderr()
	fmt.Fprint(out, "Password: ")
	first, err := term.ReadPassword(fd)
	fmt.Fprintln(out)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	fmt.Fprint(out, "Repeat password: ")
	second, err := term.ReadPassword(fd)
	fmt.Fprintln(out)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	if string(first) != string(second) {
		return "", errors.New("passwords do not match")
	}
	if len(first) == 0 {
		return "", errors.New("password must not be empty")
	}
	return string(first), nil
}

func readPasswordLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read password: %w", err)
	}
	password := strings.TrimRight(line, "\r\n")
	if password == "" {
		return "", errors.New("password must not be empty")
	}
	return password, nil
}
