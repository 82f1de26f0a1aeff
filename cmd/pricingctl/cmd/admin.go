package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"marketplace-admin/internal/app/handler"
	"marketplace-admin/internal/app/role"
)

const minPasswordLength = 8

func newAdminCmd(app *cliApp) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Пользователи админки",
	}

	var login, password, fullName, roleName string
	create := &cobra.Command{
		Use:   "create --login <login> --password <password>",
		Short: "Создать пользователя",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			login = strings.TrimSpace(login)
			if login == "" {
				return errors.New("--login must not be empty")
			}
			if len(password) < minPasswordLength {
				return fmt.Errorf("password must be at least %d characters", minPasswordLength)
			}
			userRole, err := role.Parse(roleName)
			if err != nil {
				return err
			}

			hash, err := handler.HashPassword(password)
			if err != nil {
				return fmt.Errorf("hash password: %w", err)
			}

			ctx := cmd.Context()
			store, err := app.open(ctx)
			if err != nil {
				return err
			}
			user, err := store.CreateUser(ctx, login, hash, fullName, userRole)
			if err != nil {
				return fmt.Errorf("create user %s: %w", login, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created user %d %s (%s)\n", user.ID, user.Login, userRole)
			return nil
		},
	}
	create.Flags().StringVar(&login, "login", "", "логин")
	create.Flags().StringVar(&password, "password", "", "пароль")
	create.Flags().StringVar(&fullName, "full-name", "", "имя пользователя")
	create.Flags().StringVar(&roleName, "role", role.Admin.String(), "роль: buyer, manager, admin")
	_ = create.MarkFlagRequired("login")
	_ = create.MarkFlagRequired("password")

	cmd.AddCommand(create)
	return cmd
}

func newCategoryCmd(app *cliApp) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "category",
		Short: "Категории услуг",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "create <name>",
		Short: "Создать категорию",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.TrimSpace(args[0])
			if name == "" {
				return errors.New("category name must not be empty")
			}

			ctx := cmd.Context()
			store, err := app.open(ctx)
			if err != nil {
				return err
			}
			cat, err := store.CreateCategory(ctx, name)
			if err != nil {
				return fmt.Errorf("create category %s: %w", name, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created category %d %s\n", cat.ID, cat.Name)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "Список категорий",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store, err := app.open(ctx)
			if err != nil {
				return err
			}
			cats, err := store.ListCategories(ctx)
			if err != nil {
				return err
			}
			for _, c := range cats {
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\n", c.ID, c.Name)
			}
			return nil
		},
	})
	return cmd
}
