package member

import (
	"errors"
	"net/http"
	"time"

	"github.com/Bhakat-Aditya/Biswajit-Gym/internal/api"
	"github.com/Bhakat-Aditya/Biswajit-Gym/internal/logger"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	store      Store
	service    *Service
	windowDays int
}

func NewHandler(store Store, service *Service, windowDays int) *Handler {
	return &Handler{
		store:      store,
		service:    service,
		windowDays: windowDays,
	}
}

type CreateMemberForm struct {
	Name           string  `form:"name" binding:"required"`
	Email          string  `form:"email" binding:"required,email"`
	Phone          string  `form:"phone" binding:"required"`
	Age            int     `form:"age" binding:"required,gte=10,lte=100"`
	HeightCm       float64 `form:"height" binding:"required,gt=0"`
	WeightKg       float64 `form:"weight" binding:"required,gt=0"`
	MembershipType string  `form:"membershipType" binding:"required"`
	JoiningDate    string  `form:"joiningDate" binding:"required"`
}

// Create godoc
// @Summary      Add member
// @Description  Creates a member from multipart fields plus a photo. The photo is uploaded to hosted storage before anything is persisted.
// @Tags         members
// @Security     BearerAuth
// @Accept       multipart/form-data
// @Produce      json
// @Param        photo  formData  file  true  "Member photo"
// @Success      201  {object}  api.Response
// @Failure      400  {object}  api.Response
// @Failure      409  {object}  api.Response
// @Failure      500  {object}  api.Response
// @Router       /api/members [post]
func (h *Handler) Create(c *gin.Context) {
	var form CreateMemberForm
	if err := c.ShouldBind(&form); err != nil {
		api.Fail(c, http.StatusBadRequest, api.BindingError(err))
		return
	}

	if !IsValidPlan(form.MembershipType) {
		api.Fail(c, http.StatusBadRequest, "membershipType must be Monthly, Half-Yearly or Yearly")
		return
	}

	joining, err := time.Parse("2006-01-02", form.JoiningDate)
	if err != nil {
		api.Fail(c, http.StatusBadRequest, "joiningDate must be YYYY-MM-DD")
		return
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		api.Fail(c, http.StatusBadRequest, "Photo is required")
		return
	}

	photo, err := fileHeader.Open()
	if err != nil {
		api.Fail(c, http.StatusBadRequest, "Failed to read photo")
		return
	}
	defer photo.Close()

	m, err := h.service.Create(c.Request.Context(), CreateInput{
		Name:           form.Name,
		Email:          form.Email,
		Phone:          form.Phone,
		Age:            form.Age,
		HeightCm:       form.HeightCm,
		WeightKg:       form.WeightKg,
		MembershipType: MembershipType(form.MembershipType),
		JoiningDate:    joining,
	}, photo)
	if err != nil {
		switch {
		case errors.Is(err, ErrDuplicateEmail):
			api.Fail(c, http.StatusConflict, "Email already registered")
		case errors.Is(err, ErrUnknownPlan):
			api.Fail(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, ErrUpload):
			logger.Errorf("Member photo upload failed: %v", err)
			api.Fail(c, http.StatusInternalServerError, err.Error())
		default:
			logger.Errorf("Failed to create member: %v", err)
			api.Fail(c, http.StatusInternalServerError, "Failed to create member")
		}
		return
	}

	api.OK(c, http.StatusCreated, m)
}

// ListActive godoc
// @Summary      List active members
// @Description  Members whose expiry is still ahead, sorted by name.
// @Tags         members
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  api.Response
// @Failure      500  {object}  api.Response
// @Router       /api/members [get]
func (h *Handler) ListActive(c *gin.Context) {
	members, err := h.store.FindActive(c.Request.Context(), time.Now())
	if err != nil {
		logger.Errorf("Failed to list active members: %v", err)
		api.Fail(c, http.StatusInternalServerError, "Failed to load members")
		return
	}

	api.OK(c, http.StatusOK, members)
}

// ListExpiring godoc
// @Summary      List expiring members
// @Description  Members whose expiry falls on the reminder target day.
// @Tags         members
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  api.Response
// @Failure      500  {object}  api.Response
// @Router       /api/members/expiring [get]
func (h *Handler) ListExpiring(c *gin.Context) {
	start, end := ReminderWindow(time.Now(), h.windowDays)

	members, err := h.store.FindExpiringBetween(c.Request.Context(), start, end)
	if err != nil {
		logger.Errorf("Failed to list expiring members: %v", err)
		api.Fail(c, http.StatusInternalServerError, "Failed to load members")
		return
	}

	api.OK(c, http.StatusOK, members)
}

// Remind godoc
// @Summary      Send manual renewal reminder
// @Description  Sends one reminder for the given member, regardless of the sweep window.
// @Tags         members
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  string  true  "Member ID"
// @Success      200  {object}  api.Response
// @Failure      404  {object}  api.Response
// @Failure      500  {object}  api.Response
// @Router       /api/members/{id}/remind [post]
func (h *Handler) Remind(c *gin.Context) {
	id := c.Param("id")

	m, err := h.service.Remind(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			api.Fail(c, http.StatusNotFound, "Member not found")
			return
		}
		logger.Errorf("Manual reminder for %s failed: %v", id, err)
		api.Fail(c, http.StatusInternalServerError, err.Error())
		return
	}

	api.Message(c, http.StatusOK, "Reminder sent to "+m.Email)
}
