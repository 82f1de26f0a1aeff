// Package cmd содержит команды pricingctl: импорт каталога из файлов,
// расчет цены и создание администраторов без HTTP API.
package cmd

import (
	"context"
	"errors"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"marketplace-admin/internal/app/ds"
	"marketplace-admin/internal/app/dsn"
	"marketplace-admin/internal/app/pricing"
	"marketplace-admin/internal/app/repository"
	"marketplace-admin/internal/app/role"
)

// Store - хранилище, с которым работают команды
type Store interface {
	pricing.MethodStore
	pricing.ModifierStore
	pricing.ServiceStore
	CreateCategory(ctx context.Context, name string) (ds.Category, error)
	ListCategories(ctx context.Context) ([]ds.Category, error)
	CreateUser(ctx context.Context, login, passwordHash, fullName string, userRole role.Role) (*ds.User, error)
}

// StoreOpener открывает хранилище при первом обращении команды
type StoreOpener func(ctx context.Context) (Store, error)

type cliApp struct {
	open    StoreOpener
	envFile string
	verbose bool
}

// NewRootCmd собирает дерево команд; open == nil подключается к Postgres по переменным DB_*
func NewRootCmd(open StoreOpener) *cobra.Command {
	app := &cliApp{open: open}
	if app.open == nil {
		app.open = app.openRepository
	}

	root := &cobra.Command{
		Use:   "pricingctl",
		Short: "Управление каталогом цен маркетплейса",
		Long: `pricingctl работает с каталогом напрямую через базу данных.

Examples:
  pricingctl import services services.json
  pricingctl import methods --service 3 --dry-run methods.json
  pricingctl quote --service 3 --method express --quantity 2
  pricingctl admin create --login root --password secret`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if app.verbose {
				logrus.SetLevel(logrus.DebugLevel)
			}
		},
	}

	root.PersistentFlags().StringVar(&app.envFile, "env-file", ".env", "файл с переменными окружения")
	root.PersistentFlags().BoolVarP(&app.verbose, "verbose", "v", false, "подробный вывод")

	root.AddCommand(
		newImportCmd(app),
		newQuoteCmd(app),
		newAdminCmd(app),
		newCategoryCmd(app),
	)
	return root
}

func (a *cliApp) openRepository(_ context.Context) (Store, error) {
	// .env необязателен, переменные могут прийти из окружения
	if err := godotenv.Load(a.envFile); err != nil {
		logrus.Debugf("env file %s not loaded: %v", a.envFile, err)
	}

	dsnStr := dsn.FromEnv()
	if dsnStr == "" {
		return nil, errors.New("DSN string is empty. Check your .env file")
	}
	return repository.New(dsnStr)
}

// Execute запускает pricingctl с подключением к базе по окружению
func Execute(ctx context.Context) error {
	return NewRootCmd(nil).ExecuteContext(ctx)
}
