// Package importer создает услуги и методы ценообразования пачками.
// Импорт не атомарный: каждая валидная строка записывается отдельно,
// ошибка на строке k не откатывает строки до нее.
package importer

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"marketplace-admin/internal/app/pricing"
	"marketplace-admin/internal/app/role"
)

// RowError - ошибка одной строки пакета
type RowError struct {
	Row     int                  `json:"row"`
	RowName string               `json:"rowName"`
	Error   string               `json:"error"`
	Fields  []pricing.FieldError `json:"fields,omitempty"`
}

// Result - итог пакетной операции. Частичный успех - это Result, а не ошибка.
type Result struct {
	Created    int        `json:"created"`
	Failed     int        `json:"failed"`
	Errors     []RowError `json:"errors"`
	CreatedIDs []uint     `json:"createdIds"`
}

// Partial - часть строк записана, часть нет
func (r Result) Partial() bool {
	return r.Created > 0 && r.Failed > 0
}

// RowIssues - ошибки полей строки при предварительной проверке
type RowIssues struct {
	Row     int                  `json:"row"`
	RowName string               `json:"rowName"`
	Fields  []pricing.FieldError `json:"fields"`
}

type Importer struct {
	services pricing.ServiceStore
	methods  pricing.MethodStore
}

func New(services pricing.ServiceStore, methods pricing.MethodStore) *Importer {
	return &Importer{services: services, methods: methods}
}

// DefaultServiceRow - значения, с которыми начинается каждая новая строка услуг
func DefaultServiceRow() pricing.ServiceDraft {
	return pricing.ServiceDraft{Active: true}
}

// DefaultMethodRow - значения, с которыми начинается каждая новая строка методов
func DefaultMethodRow() pricing.MethodDraft {
	return pricing.MethodDraft{PricingUnit: pricing.UnitFixed, Shortcuts: []string{}, Active: true}
}

// RowName - имя строки для отчета; пустое имя заменяется на "row N"
func RowName(index int, name string) string {
	if name = strings.TrimSpace(name); name != "" {
		return name
	}
	return fmt.Sprintf("row %d", index+1)
}

func authorize(actor role.Actor) error {
	if !actor.Role.CanManageCatalog() {
		return fmt.Errorf("batch import by user %d (%s): %w", actor.UserID, actor.Role, role.ErrForbidden)
	}
	return nil
}

// PreflightServices проверяет строки без записи
func (im *Importer) PreflightServices(ctx context.Context, actor role.Actor, rows []pricing.ServiceDraft) ([]RowIssues, error) {
	if err := authorize(actor); err != nil {
		return nil, err
	}
	persisted, err := im.services.ListServices(ctx)
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	issues := pricing.ValidateServiceRows(rows, persisted)
	return collectIssues(issues, func(i int) string { return rows[i].Name }), nil
}

// PreflightPricingMethods проверяет строки методов услуги без записи
func (im *Importer) PreflightPricingMethods(ctx context.Context, actor role.Actor, serviceID uint, rows []pricing.MethodDraft) ([]RowIssues, error) {
	if err := authorize(actor); err != nil {
		return nil, err
	}
	persisted, err := im.persistedMethods(ctx, serviceID)
	if err != nil {
		return nil, err
	}
	issues := pricing.ValidateMethodRows(rows, persisted)
	return collectIssues(issues, func(i int) string { return rows[i].Name }), nil
}

func collectIssues(issues [][]pricing.FieldError, name func(int) string) []RowIssues {
	out := make([]RowIssues, 0)
	for i, fields := range issues {
		if len(fields) == 0 {
			continue
		}
		out = append(out, RowIssues{Row: i + 1, RowName: RowName(i, name(i)), Fields: fields})
	}
	return out
}

// ImportServices создает услуги из строк пакета
func (im *Importer) ImportServices(ctx context.Context, actor role.Actor, rows []pricing.ServiceDraft) (Result, error) {
	if err := authorize(actor); err != nil {
		return Result{}, err
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	persisted, err := im.services.ListServices(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("list services: %w", err)
	}
	issues := pricing.ValidateServiceRows(rows, persisted)

	// после старта пакет доводится до конца, отмена контекста не прерывает запись
	submitCtx := context.WithoutCancel(ctx)
	res := newResult()
	for i, row := range rows {
		name := RowName(i, row.Name)
		if len(issues[i]) > 0 {
			res.fail(i, name, issues[i], nil)
			continue
		}
		svc, err := im.services.CreateService(submitCtx, row.ToService())
		if err != nil {
			res.fail(i, name, nil, err)
			continue
		}
		res.created(svc.ID)
	}

	res.log("services", actor, logrus.Fields{})
	return res.Result, nil
}

// ImportPricingMethods создает методы ценообразования одной услуги
func (im *Importer) ImportPricingMethods(ctx context.Context, actor role.Actor, serviceID uint, rows []pricing.MethodDraft) (Result, error) {
	if err := authorize(actor); err != nil {
		return Result{}, err
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	persisted, err := im.persistedMethods(ctx, serviceID)
	if err != nil {
		return Result{}, err
	}
	issues := pricing.ValidateMethodRows(rows, persisted)

	submitCtx := context.WithoutCancel(ctx)
	res := newResult()
	for i, row := range rows {
		name := RowName(i, row.Name)
		if len(issues[i]) > 0 {
			res.fail(i, name, issues[i], nil)
			continue
		}
		m, err := im.methods.CreateMethod(submitCtx, row.ToMethod(serviceID))
		if err != nil {
			res.fail(i, name, nil, err)
			continue
		}
		res.created(m.ID)
	}

	res.log("pricing methods", actor, logrus.Fields{"service_id": serviceID})
	return res.Result, nil
}

func (im *Importer) persistedMethods(ctx context.Context, serviceID uint) ([]pricing.PricingMethod, error) {
	if serviceID == 0 {
		return nil, &pricing.ValidationError{Fields: []pricing.FieldError{
			{Field: "serviceId", Code: pricing.CodeRequired, Message: "Service is required"},
		}}
	}
	if _, err := im.services.GetService(ctx, serviceID); err != nil {
		return nil, fmt.Errorf("get service %d: %w", serviceID, err)
	}
	persisted, err := im.methods.ListMethods(ctx, serviceID)
	if err != nil {
		return nil, fmt.Errorf("list methods of service %d: %w", serviceID, err)
	}
	return persisted, nil
}

type resultBuilder struct {
	Result
}

func newResult() *resultBuilder {
	return &resultBuilder{Result: Result{Errors: []RowError{}, CreatedIDs: []uint{}}}
}

func (b *resultBuilder) created(id uint) {
	b.Created++
	b.CreatedIDs = append(b.CreatedIDs, id)
}

func (b *resultBuilder) fail(index int, name string, fields []pricing.FieldError, err error) {
	b.Failed++
	msg := ""
	if err != nil {
		msg = err.Error()
	} else {
		parts := make([]string, len(fields))
		for i, f := range fields {
			parts[i] = f.Message
		}
		msg = strings.Join(parts, "; ")
	}
	b.Errors = append(b.Errors, RowError{Row: index + 1, RowName: name, Error: msg, Fields: fields})
}

func (b *resultBuilder) log(kind string, actor role.Actor, fields logrus.Fields) {
	fields["user_id"] = actor.UserID
	for _, e := range b.Errors {
		logrus.WithFields(fields).WithFields(logrus.Fields{
			"row":      e.Row,
			"row_name": e.RowName,
		}).Warnf("batch %s: row rejected: %s", kind, e.Error)
	}
	logrus.WithFields(fields).Infof("batch %s: created %d, failed %d", kind, b.Created, b.Failed)
}
