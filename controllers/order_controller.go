package controllers

import (
	"math"
	"net/http"

	"github.com/alexlopesbr/little-lemon-api/pkg/apperr"
	"github.com/alexlopesbr/little-lemon-api/pkg/resp"
	"github.com/alexlopesbr/little-lemon-api/repository"
	"github.com/alexlopesbr/little-lemon-api/services"

	"github.com/gin-gonic/gin"
)

type OrderController struct{ Svc *services.OrderService }

func NewOrderController(s *services.OrderService) *OrderController { return &OrderController{Svc: s} }

// POST /orders/ checks out the caller's cart. No body.
func (oc *OrderController) Create(c *gin.Context) {
	p, err := principal(c)
	if err != nil {
		resp.Error(c, err)
		return
	}
	o, err := oc.Svc.Checkout(p)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, toOrder(o))
}

// GET /orders/?status=&ordering=&page=&perpage=
func (oc *OrderController) List(c *gin.Context) {
	p, err := principal(c)
	if err != nil {
		resp.Error(c, err)
		return
	}
	pg, err := paging(c)
	if err != nil {
		resp.Error(c, err)
		return
	}
	status, err := boolQuery(c, "status")
	if err != nil {
		resp.Error(c, err)
		return
	}
	orders, total, err := oc.Svc.List(p, repository.OrderFilter{
		Status:   status,
		Ordering: c.Query("ordering"),
		Paging:   pg,
	})
	if err != nil {
		resp.Error(c, err)
		return
	}
	out := make([]orderOut, 0, len(orders))
	for i := range orders {
		out = append(out, toOrder(&orders[i]))
	}
	resp.OK(c, resp.Page{Items: out, Total: total, Page: pg.Page, PerPage: pg.PerPage})
}

// GET /orders/:id
func (oc *OrderController) Detail(c *gin.Context) {
	p, err := principal(c)
	if err != nil {
		resp.Error(c, err)
		return
	}
	id, err := idParam(c, "id")
	if err != nil {
		resp.Error(c, err)
		return
	}
	o, err := oc.Svc.Get(p, id)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, toOrder(o))
}

// PUT, PATCH /orders/:id with {"status": bool, "delivery_crew": id|null}.
// PUT requires status.
func (oc *OrderController) Update(c *gin.Context) {
	p, err := principal(c)
	if err != nil {
		resp.Error(c, err)
		return
	}
	id, err := idParam(c, "id")
	if err != nil {
		resp.Error(c, err)
		return
	}
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BindError(c, err)
		return
	}
	upd, err := parseOrderUpdate(body, c.Request.Method == http.MethodPut)
	if err != nil {
		resp.Error(c, err)
		return
	}
	o, err := oc.Svc.Update(p, id, upd)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, toOrder(o))
}

// DELETE /orders/:id
func (oc *OrderController) Delete(c *gin.Context) {
	p, err := principal(c)
	if err != nil {
		resp.Error(c, err)
		return
	}
	id, err := idParam(c, "id")
	if err != nil {
		resp.Error(c, err)
		return
	}
	if err := oc.Svc.Delete(p, id); err != nil {
		resp.Error(c, err)
		return
	}
	resp.NoContent(c)
}

// parseOrderUpdate reads a JSON object where a missing key leaves the field
// alone and "delivery_crew": null unassigns.
func parseOrderUpdate(body map[string]any, full bool) (services.OrderUpdate, error) {
	var u services.OrderUpdate
	if v, ok := body["status"]; ok {
		b, isBool := v.(bool)
		if !isBool {
			return u, apperr.Invalid("status", "must be true or false")
		}
		u.Status = &b
	} else if full {
		return u, apperr.Invalid("status", "required")
	}

	if v, ok := body["delivery_crew"]; ok {
		u.SetDeliveryCrew = true
		if v != nil {
			f, isNum := v.(float64)
			if !isNum || f < 1 || f != math.Trunc(f) || f > math.MaxUint32 {
				return u, apperr.Invalid("delivery_crew", "must be a user id or null")
			}
			id := uint(f)
			u.DeliveryCrewID = &id
		}
	}
	return u, nil
}
