package reference

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"injetora-apontamentos/internal/storage"
)

type ReferenceStorage interface {
	ListEmployees(ctx context.Context) ([]storage.Employee, error)
	ListParts(ctx context.Context) ([]storage.Part, error)
	ListMachines(ctx context.Context, tipoInjetora string) ([]storage.Machine, error)
}

type Service struct {
	storage ReferenceStorage
}

func NewService(storage ReferenceStorage) *Service {
	return &Service{storage: storage}
}

// Lists busca funcionários, peças e máquinas em paralelo; só leitura.
func (s *Service) Lists(ctx context.Context, tipoInjetora string) (storage.ReferenceLists, error) {
	const op = "service.reference.Lists"

	var lists storage.ReferenceLists

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		lists.Funcionarios, err = s.storage.ListEmployees(gCtx)
		if err != nil {
			return fmt.Errorf("funcionarios: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		lists.Pecas, err = s.storage.ListParts(gCtx)
		if err != nil {
			return fmt.Errorf("pecas: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		lists.Maquinas, err = s.storage.ListMachines(gCtx, tipoInjetora)
		if err != nil {
			return fmt.Errorf("maquinas: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return storage.ReferenceLists{}, fmt.Errorf("%s: %w", op, err)
	}

	return lists, nil
}
