package growth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"infant-growth/internal/platform/logger"
	"infant-growth/internal/platform/metrics"

	"github.com/google/uuid"
)

// Service es el caso de uso que usan los handlers: valida entrada,
// muta el HistoryStore y refleja el cambio en el Repository.
type Service struct {
	repo     Repository
	store    *HistoryStore
	table    *StandardTable
	facade   *Facade
	profiles ProfileReader
	log      logger.Logger
	metrics  *metrics.Metrics
	now      func() time.Time
}

type Options struct {
	Table    *StandardTable // default: DefaultTable()
	Profiles ProfileReader
	Logger   logger.Logger
	Metrics  *metrics.Metrics
}

func NewService(repo Repository, opts Options) *Service {
	table := opts.Table
	if table == nil {
		table = DefaultTable()
	}
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	store := NewHistoryStore()
	return &Service{
		repo:     repo,
		store:    store,
		table:    table,
		facade:   NewFacade(table, store, opts.Profiles),
		profiles: opts.Profiles,
		log:      logger.WithComponent(log, "growth"),
		metrics:  opts.Metrics,
		now:      time.Now,
	}
}

// Load reconstruye el store desde el repositorio. Se llama una vez al arrancar.
func (s *Service) Load(ctx context.Context) error {
	records, err := s.repo.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("load growth history: %w", err)
	}
	if err := s.store.Restore(records); err != nil {
		return fmt.Errorf("restore growth history: %w", err)
	}
	s.log.Info("growth history loaded", map[string]any{
		"weight_records": s.store.Len(MetricWeight),
		"height_records": s.store.Len(MetricHeight),
	})
	return nil
}

// reservedIDs chocan con rutas fijas bajo /growth/{metric}.
var reservedIDs = map[string]bool{"status": true}

type CreateInput struct {
	ID    string // opcional; si viene vacío se genera un uuid
	Date  string // YYYY-MM-DD
	Value float64
}

type UpdateInput struct {
	Date  string
	Value float64
}

func (s *Service) Create(ctx context.Context, m Metric, in CreateInput) (Record, error) {
	r, err := s.buildRecord(m, strings.TrimSpace(in.ID), in.Date, in.Value)
	if err != nil {
		return Record{}, err
	}
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if reservedIDs[r.ID] {
		return Record{}, fmt.Errorf("%w: record id %q is reserved", ErrInvalidInput, r.ID)
	}

	err = s.create(ctx, r)
	s.metrics.ObserveMutation(string(m), "add", err)
	if err != nil {
		return Record{}, err
	}

	s.log.Info("growth record added", map[string]any{
		logger.FieldMetric:   m,
		logger.FieldRecordID: r.ID,
		"date":               FormatDate(r.Date),
		"value":              r.Value,
	})
	return s.store.Get(m, r.ID)
}

func (s *Service) create(ctx context.Context, r Record) error {
	if err := s.store.Add(r); err != nil {
		return err
	}
	if err := s.repo.Insert(ctx, r); err != nil {
		// el repo no aceptó: deshacer en memoria
		_ = s.store.Delete(r.ID, r.Metric)
		s.log.Error("persist growth record failed", map[string]any{
			logger.FieldMetric:   r.Metric,
			logger.FieldRecordID: r.ID,
			logger.FieldError:    err,
		})
		return fmt.Errorf("persist record: %w", err)
	}
	return nil
}

func (s *Service) Update(ctx context.Context, m Metric, id string, in UpdateInput) (Record, error) {
	r, err := s.buildRecord(m, strings.TrimSpace(id), in.Date, in.Value)
	if err != nil {
		return Record{}, err
	}
	if r.ID == "" {
		return Record{}, fmt.Errorf("%w: record id required", ErrInvalidInput)
	}

	err = s.update(ctx, r)
	s.metrics.ObserveMutation(string(m), "update", err)
	if err != nil {
		return Record{}, err
	}

	s.log.Info("growth record updated", map[string]any{
		logger.FieldMetric:   m,
		logger.FieldRecordID: r.ID,
		"date":               FormatDate(r.Date),
		"value":              r.Value,
	})
	return s.store.Get(m, r.ID)
}

func (s *Service) update(ctx context.Context, r Record) error {
	prev, err := s.store.Get(r.Metric, r.ID)
	if err != nil {
		return err
	}
	if err := s.store.Update(r); err != nil {
		return err
	}
	if err := s.repo.Update(ctx, r); err != nil {
		_ = s.store.Update(prev)
		s.log.Error("persist growth update failed", map[string]any{
			logger.FieldMetric:   r.Metric,
			logger.FieldRecordID: r.ID,
			logger.FieldError:    err,
		})
		return fmt.Errorf("persist record: %w", err)
	}
	return nil
}

func (s *Service) Delete(ctx context.Context, m Metric, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return fmt.Errorf("%w: record id required", ErrInvalidInput)
	}

	err := s.delete(ctx, m, id)
	s.metrics.ObserveMutation(string(m), "delete", err)
	if err != nil {
		return err
	}

	s.log.Info("growth record deleted", map[string]any{
		logger.FieldMetric:   m,
		logger.FieldRecordID: id,
	})
	return nil
}

func (s *Service) delete(ctx context.Context, m Metric, id string) error {
	prev, err := s.store.remove(m, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, m, id); err != nil {
		// el repo puede no tenerlo (p.ej. borrado por fuera): igual queda borrado en memoria
		if errors.Is(err, ErrNotFound) {
			return nil
		}
		_ = s.store.putBack(prev)
		return fmt.Errorf("persist delete: %w", err)
	}
	return nil
}

// List devuelve el historial de la métrica, del más antiguo al más reciente.
func (s *Service) List(_ context.Context, m Metric) ([]Record, error) {
	return s.store.All(m)
}

// Get devuelve un registro puntual.
func (s *Service) Get(_ context.Context, m Metric, id string) (Record, error) {
	return s.store.Get(m, strings.TrimSpace(id))
}

// Status es la lectura "valor actual + banda" de una métrica.
func (s *Service) Status(ctx context.Context, m Metric) (Status, error) {
	st, err := s.facade.CurrentStatus(ctx, m)
	if err != nil {
		return Status{}, err
	}
	s.metrics.ObserveClassification(string(m), st.Band.String())
	return st, nil
}

// Summary junta el estado de ambas métricas y la edad actual del bebé.
type Summary struct {
	AgeMonths int
	Weight    Status
	Height    Status
}

func (s *Service) Summary(ctx context.Context) (Summary, error) {
	if s.profiles == nil {
		return Summary{}, ErrNoProfile
	}
	bp, err := s.profiles.BirthProfile(ctx)
	if err != nil {
		return Summary{}, fmt.Errorf("read birth profile: %w", err)
	}

	w, err := s.Status(ctx, MetricWeight)
	if err != nil {
		return Summary{}, err
	}
	h, err := s.Status(ctx, MetricHeight)
	if err != nil {
		return Summary{}, err
	}

	return Summary{
		AgeMonths: AgeInMonths(bp.DateOfBirth, DateOf(s.now())),
		Weight:    w,
		Height:    h,
	}, nil
}

// Standards expone las filas de referencia (p.ej. para superponer en el gráfico).
func (s *Service) Standards(m Metric) ([]StandardRow, error) {
	return s.table.RowsFor(m)
}

func (s *Service) buildRecord(m Metric, id, date string, value float64) (Record, error) {
	if !m.Valid() {
		return Record{}, fmt.Errorf("%w: %q", ErrInvalidMetric, m)
	}
	d, err := ParseDate(date)
	if err != nil {
		return Record{}, err
	}
	if err := ValidateValue(value); err != nil {
		return Record{}, err
	}
	return Record{ID: id, Metric: m, Date: d, Value: value}, nil
}
