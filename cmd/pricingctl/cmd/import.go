package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"marketplace-admin/internal/app/dto"
	"marketplace-admin/internal/app/importer"
	"marketplace-admin/internal/app/role"
)

var errRowsFailed = errors.New("some rows were not imported")

type importFlags struct {
	dryRun bool
	asJSON bool
}

func (f *importFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.dryRun, "dry-run", false, "только проверить строки, ничего не записывать")
	cmd.Flags().BoolVar(&f.asJSON, "json", false, "вывести результат в JSON")
}

func newImportCmd(app *cliApp) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Пакетный импорт из JSON-файла",
		Long: `Файл содержит JSON-массив строк. Незаданные поля берутся
из значений новой строки (pricingctl import defaults).
Импорт не атомарный: валидные строки записываются, ошибки выводятся по строкам.`,
	}
	cmd.AddCommand(newImportServicesCmd(app), newImportMethodsCmd(app), newImportDefaultsCmd())
	return cmd
}

func newImportServicesCmd(app *cliApp) *cobra.Command {
	var flags importFlags
	cmd := &cobra.Command{
		Use:   "services <file.json>",
		Short: "Импорт услуг",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, err := readRows[dto.ServiceRow](cmd, args[0])
			if err != nil {
				return err
			}
			drafts := dto.BatchServicesRequest{Rows: rows}.Drafts()

			ctx := cmd.Context()
			store, err := app.open(ctx)
			if err != nil {
				return err
			}
			im := importer.New(store, store)

			if flags.dryRun {
				issues, err := im.PreflightServices(ctx, role.Operator(), drafts)
				if err != nil {
					return err
				}
				return printIssues(cmd.OutOrStdout(), len(rows), issues, flags.asJSON)
			}

			res, err := im.ImportServices(ctx, role.Operator(), drafts)
			if err != nil {
				return err
			}
			return printResult(cmd.OutOrStdout(), res, flags.asJSON)
		},
	}
	flags.register(cmd)
	return cmd
}

func newImportMethodsCmd(app *cliApp) *cobra.Command {
	var (
		flags     importFlags
		serviceID uint
	)
	cmd := &cobra.Command{
		Use:   "methods --service <id> <file.json>",
		Short: "Импорт методов ценообразования одной услуги",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, err := readRows[dto.MethodRow](cmd, args[0])
			if err != nil {
				return err
			}
			drafts := dto.BatchPricingMethodsRequest{ServiceID: serviceID, Rows: rows}.Drafts()

			ctx := cmd.Context()
			store, err := app.open(ctx)
			if err != nil {
				return err
			}
			im := importer.New(store, store)

			if flags.dryRun {
				issues, err := im.PreflightPricingMethods(ctx, role.Operator(), serviceID, drafts)
				if err != nil {
					return err
				}
				return printIssues(cmd.OutOrStdout(), len(rows), issues, flags.asJSON)
			}

			res, err := im.ImportPricingMethods(ctx, role.Operator(), serviceID, drafts)
			if err != nil {
				return err
			}
			return printResult(cmd.OutOrStdout(), res, flags.asJSON)
		},
	}
	flags.register(cmd)
	cmd.Flags().UintVar(&serviceID, "service", 0, "ID услуги")
	_ = cmd.MarkFlagRequired("service")
	return cmd
}

func newImportDefaultsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "defaults",
		Short: "Значения, с которыми начинается новая строка",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(dto.NewBatchDefaultsResponse())
		},
	}
}

// readRows читает JSON-массив строк из файла; "-" читает stdin
func readRows[T any](cmd *cobra.Command, path string) ([]T, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var rows []T
	if err = json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s contains no rows", path)
	}
	return rows, nil
}

func printResult(w io.Writer, res importer.Result, asJSON bool) error {
	if asJSON {
		if err := json.NewEncoder(w).Encode(res); err != nil {
			return err
		}
	} else {
		fmt.Fprintf(w, "Created: %d, failed: %d\n", res.Created, res.Failed)
		for _, e := range res.Errors {
			fmt.Fprintf(w, "  ✗ row %d (%s): %s\n", e.Row, e.RowName, e.Error)
		}
	}
	if res.Failed > 0 {
		return errRowsFailed
	}
	return nil
}

func printIssues(w io.Writer, total int, issues []importer.RowIssues, asJSON bool) error {
	if asJSON {
		if err := json.NewEncoder(w).Encode(dto.PreflightResponse{Valid: len(issues) == 0, Issues: issues}); err != nil {
			return err
		}
	} else {
		fmt.Fprintf(w, "Checked: %d, invalid: %d\n", total, len(issues))
		for _, is := range issues {
			for _, f := range is.Fields {
				fmt.Fprintf(w, "  ✗ row %d (%s) %s: %s\n", is.Row, is.RowName, f.Field, f.Message)
			}
		}
	}
	if len(issues) > 0 {
		return errRowsFailed
	}
	return nil
}
