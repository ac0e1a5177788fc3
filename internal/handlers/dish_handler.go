package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/plateful/restaurant-admin/internal/httperr"
	"github.com/plateful/restaurant-admin/internal/httpresp"
	"github.com/plateful/restaurant-admin/internal/middleware"
	"github.com/plateful/restaurant-admin/internal/usecase/menu"
)

type DishHandler struct {
	listDishes     *menu.ListDishes
	createDish     *menu.CreateDish
	updateDish     *menu.UpdateDish
	deleteDish     *menu.DeleteDish
	listCategories *menu.ListCategories
	createCategory *menu.CreateCategory
}

func NewDishHandler(
	listDishes *menu.ListDishes,
	createDish *menu.CreateDish,
	updateDish *menu.UpdateDish,
	deleteDish *menu.DeleteDish,
	listCategories *menu.ListCategories,
	createCategory *menu.CreateCategory,
) *DishHandler {
	return &DishHandler{
		listDishes:     listDishes,
		createDish:     createDish,
		updateDish:     updateDish,
		deleteDish:     deleteDish,
		listCategories: listCategories,
		createCategory: createCategory,
	}
}

// --------- Requests ---------

type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

// --------- Helpers ---------

func uintParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidArgument, name+" must be a positive integer")
		return 0, false
	}
	return uint(n), true
}

// --------- Dishes ---------

func (h *DishHandler) ListDishes(c *gin.Context) {
	actor, _ := middleware.CurrentUser(c)
	email := targetEmail(c, actor)

	dishes, err := h.listDishes.Execute(c.Request.Context(), actor, email)
	if err != nil {
		httperr.Handle(c, err)
		return
	}

	httpresp.List(c, dishes)
}

func (h *DishHandler) CreateDish(c *gin.Context) {
	actor, _ := middleware.CurrentUser(c)

	var in menu.CreateDishInput
	if err := c.ShouldBindJSON(&in); err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidArgument, err.Error())
		return
	}

	dish, err := h.createDish.Execute(c.Request.Context(), actor, in)
	if err != nil {
		httperr.Handle(c, err)
		return
	}

	httpresp.Created(c, dish)
}

func (h *DishHandler) UpdateDish(c *gin.Context) {
	actor, _ := middleware.CurrentUser(c)

	dishID, ok := uintParam(c, "dish_id")
	if !ok {
		return
	}

	var patch menu.DishPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidArgument, err.Error())
		return
	}

	dish, err := h.updateDish.Execute(c.Request.Context(), actor, dishID, patch)
	if err != nil {
		httperr.Handle(c, err)
		return
	}

	httpresp.OK(c, dish)
}

func (h *DishHandler) DeleteDish(c *gin.Context) {
	actor, _ := middleware.CurrentUser(c)

	dishID, ok := uintParam(c, "dish_id")
	if !ok {
		return
	}

	if err := h.deleteDish.Execute(c.Request.Context(), actor, dishID); err != nil {
		httperr.Handle(c, err)
		return
	}

	httpresp.OK(c, gin.H{"status": "deleted"})
}

// --------- Categories ---------

func (h *DishHandler) ListCategories(c *gin.Context) {
	ctx := c.Request.Context()

	if raw := c.Query("restaurant_id"); raw != "" {
		n, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			httperr.BadRequest(c, httperr.CodeInvalidArgument, "restaurant_id must be a positive integer")
			return
		}
		categories, err := h.listCategories.ExecuteForRestaurant(ctx, uint(n))
		if err != nil {
			httperr.Handle(c, err)
			return
		}
		httpresp.OK(c, categories)
		return
	}

	categories, err := h.listCategories.Execute(ctx)
	if err != nil {
		httperr.Handle(c, err)
		return
	}
	httpresp.OK(c, categories)
}

func (h *DishHandler) CreateCategory(c *gin.Context) {
	actor, _ := middleware.CurrentUser(c)

	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidArgument, err.Error())
		return
	}

	category, err := h.createCategory.Execute(c.Request.Context(), actor, req.Name)
	if err != nil {
		httperr.Handle(c, err)
		return
	}

	httpresp.Created(c, category)
}
