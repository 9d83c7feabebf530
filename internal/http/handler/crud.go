package handler

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"propdesk/internal/service"
)

// crudService is the method set shared by every resource service.
type crudService[T, F any] interface {
	Create(ctx context.Context, v *T) (*T, error)
	Get(ctx context.Context, id string) (*T, error)
	List(ctx context.Context, f F, p service.Page) (*service.ListResult[T], error)
	Update(ctx context.Context, id string, v *T) (*T, error)
	Delete(ctx context.Context, id string) error
}

// filterFunc builds a list filter from query parameters. On failure the 400
// response has already been written.
type filterFunc[F any] func(c *fiber.Ctx) (F, bool, error)

func listHandler[T, F any](svc crudService[T, F], filter filterFunc[F]) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, ok, err := page(c)
		if !ok {
			return err
		}
		f, ok, err := filter(c)
		if !ok {
			return err
		}
		res, err := svc.List(c.UserContext(), f, p)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(res)
	}
}

func createHandler[T, F any](svc crudService[T, F]) fiber.Handler {
	return func(c *fiber.Ctx) error {
		in := new(T)
		if ok, err := body(c, in); !ok {
			return err
		}
		out, err := svc.Create(c.UserContext(), in)
		if err != nil {
			return serviceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(out)
	}
}

func getHandler[T, F any](svc crudService[T, F]) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok, err := pathID(c)
		if !ok {
			return err
		}
		out, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(out)
	}
}

func updateHandler[T, F any](svc crudService[T, F]) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok, err := pathID(c)
		if !ok {
			return err
		}
		in := new(T)
		if ok, err := body(c, in); !ok {
			return err
		}
		out, err := svc.Update(c.UserContext(), id, in)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(out)
	}
}

func deleteHandler[T, F any](svc crudService[T, F]) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok, err := pathID(c)
		if !ok {
			return err
		}
		if err := svc.Delete(c.UserContext(), id); err != nil {
			return serviceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// viewHandler serves the display-formatted representation of one record.
func viewHandler[V any](view func(ctx context.Context, id string) (*V, error)) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok, err := pathID(c)
		if !ok {
			return err
		}
		out, err := view(c.UserContext(), id)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(out)
	}
}

// resource registers the five CRUD routes of one entity under prefix.
func resource[T, F any](r fiber.Router, prefix string, svc crudService[T, F], filter filterFunc[F]) {
	r.Get(prefix, listHandler(svc, filter))
	r.Post(prefix, createHandler(svc))
	r.Get(prefix+"/:id", getHandler(svc))
	r.Put(prefix+"/:id", updateHandler(svc))
	r.Delete(prefix+"/:id", deleteHandler(svc))
}
