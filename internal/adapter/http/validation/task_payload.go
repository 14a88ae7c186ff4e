package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/pavelpernicka/scoutcomp/internal/adapter/http/dto"
	"github.com/pavelpernicka/scoutcomp/internal/core/domain"
)

var ErrInvalidPayload = errors.New("invalid payload")

func BuildCreateTaskInput(req dto.CreateTaskRequest) (domain.CreateTaskInput, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.CreateTaskInput{}, ErrInvalidPayload
	}

	startTime, err := parseOptionalTime(req.StartTime)
	if err != nil {
		return domain.CreateTaskInput{}, ErrInvalidPayload
	}

	endTime, err := parseOptionalTime(req.EndTime)
	if err != nil {
		return domain.CreateTaskInput{}, ErrInvalidPayload
	}

	pointsPerCompletion := 1.0
	if req.PointsPerCompletion != nil {
		pointsPerCompletion = *req.PointsPerCompletion
	}

	requiresApproval := true
	if req.RequiresApproval != nil {
		requiresApproval = *req.RequiresApproval
	}

	var periodUnit *domain.PeriodUnit
	if req.PeriodUnit != nil {
		value := domain.PeriodUnit(*req.PeriodUnit)
		periodUnit = &value
	}

	return domain.CreateTaskInput{
		TeamID:              req.TeamID,
		Name:                name,
		Description:         req.Description,
		StartTime:           startTime,
		EndTime:             endTime,
		PointsPerCompletion: pointsPerCompletion,
		MaxPerPeriod:        req.MaxPerPeriod,
		PeriodUnit:          periodUnit,
		PeriodCount:         req.PeriodCount,
		RequiresApproval:    requiresApproval,
	}, nil
}

func BuildUpdateTaskInput(req dto.UpdateTaskRequest, raw map[string]json.RawMessage) (domain.UpdateTaskInput, error) {
	if !hasTaskUpdateFields(raw) {
		return domain.UpdateTaskInput{}, ErrInvalidPayload
	}

	var name *string
	if hasJSONField(raw, "name") && req.Name == nil {
		return domain.UpdateTaskInput{}, ErrInvalidPayload
	}
	if req.Name != nil {
		value := strings.TrimSpace(*req.Name)
		if value == "" {
			return domain.UpdateTaskInput{}, ErrInvalidPayload
		}
		name = &value
	}

	teamIDSet := hasJSONField(raw, "team_id")
	if teamIDSet && !isJSONNull(raw["team_id"]) && req.TeamID == nil {
		return domain.UpdateTaskInput{}, ErrInvalidPayload
	}

	descriptionSet := hasJSONField(raw, "description")
	if descriptionSet && !isJSONNull(raw["description"]) && req.Description == nil {
		return domain.UpdateTaskInput{}, ErrInvalidPayload
	}

	var startTime *time.Time
	if hasJSONField(raw, "start_time") {
		if req.StartTime == nil {
			return domain.UpdateTaskInput{}, ErrInvalidPayload
		}
		parsed, err := time.Parse(time.RFC3339, *req.StartTime)
		if err != nil {
			return domain.UpdateTaskInput{}, ErrInvalidPayload
		}
		startTime = &parsed
	}

	var endTime *time.Time
	endTimeSet := hasJSONField(raw, "end_time")
	if endTimeSet && !isJSONNull(raw["end_time"]) {
		if req.EndTime == nil {
			return domain.UpdateTaskInput{}, ErrInvalidPayload
		}
		parsed, err := time.Parse(time.RFC3339, *req.EndTime)
		if err != nil {
			return domain.UpdateTaskInput{}, ErrInvalidPayload
		}
		endTime = &parsed
	}

	if hasJSONField(raw, "points_per_completion") && req.PointsPerCompletion == nil {
		return domain.UpdateTaskInput{}, ErrInvalidPayload
	}

	maxPerPeriodSet := hasJSONField(raw, "max_per_period")
	if maxPerPeriodSet && !isJSONNull(raw["max_per_period"]) && req.MaxPerPeriod == nil {
		return domain.UpdateTaskInput{}, ErrInvalidPayload
	}

	var periodUnit *domain.PeriodUnit
	periodUnitSet := hasJSONField(raw, "period_unit")
	if periodUnitSet && !isJSONNull(raw["period_unit"]) {
		if req.PeriodUnit == nil {
			return domain.UpdateTaskInput{}, ErrInvalidPayload
		}
		value := domain.PeriodUnit(*req.PeriodUnit)
		periodUnit = &value
	}

	periodCountSet := hasJSONField(raw, "period_count")
	if periodCountSet && !isJSONNull(raw["period_count"]) && req.PeriodCount == nil {
		return domain.UpdateTaskInput{}, ErrInvalidPayload
	}

	if hasJSONField(raw, "requires_approval") && req.RequiresApproval == nil {
		return domain.UpdateTaskInput{}, ErrInvalidPayload
	}

	return domain.UpdateTaskInput{
		TeamID:              req.TeamID,
		TeamIDSet:           teamIDSet,
		Name:                name,
		Description:         req.Description,
		DescriptionSet:      descriptionSet,
		StartTime:           startTime,
		EndTime:             endTime,
		EndTimeSet:          endTimeSet,
		PointsPerCompletion: req.PointsPerCompletion,
		MaxPerPeriod:        req.MaxPerPeriod,
		MaxPerPeriodSet:     maxPerPeriodSet,
		PeriodUnit:          periodUnit,
		PeriodUnitSet:       periodUnitSet,
		PeriodCount:         req.PeriodCount,
		PeriodCountSet:      periodCountSet,
		RequiresApproval:    req.RequiresApproval,
	}, nil
}

func BuildUpdateVariantInput(req dto.UpdateVariantRequest, raw map[string]json.RawMessage) (domain.UpdateVariantInput, error) {
	if !hasJSONField(raw, "name") && !hasJSONField(raw, "description") &&
		!hasJSONField(raw, "points") && !hasJSONField(raw, "position") {
		return domain.UpdateVariantInput{}, ErrInvalidPayload
	}

	var name *string
	if hasJSONField(raw, "name") && req.Name == nil {
		return domain.UpdateVariantInput{}, ErrInvalidPayload
	}
	if req.Name != nil {
		value := strings.TrimSpace(*req.Name)
		if value == "" {
			return domain.UpdateVariantInput{}, ErrInvalidPayload
		}
		name = &value
	}

	descriptionSet := hasJSONField(raw, "description")
	if descriptionSet && !isJSONNull(raw["description"]) && req.Description == nil {
		return domain.UpdateVariantInput{}, ErrInvalidPayload
	}

	if hasJSONField(raw, "points") && req.Points == nil {
		return domain.UpdateVariantInput{}, ErrInvalidPayload
	}
	if hasJSONField(raw, "position") && req.Position == nil {
		return domain.UpdateVariantInput{}, ErrInvalidPayload
	}

	return domain.UpdateVariantInput{
		Name:           name,
		Description:    req.Description,
		DescriptionSet: descriptionSet,
		Points:         req.Points,
		Position:       req.Position,
	}, nil
}

func hasTaskUpdateFields(raw map[string]json.RawMessage) bool {
	return hasJSONField(raw, "team_id") ||
		hasJSONField(raw, "name") ||
		hasJSONField(raw, "description") ||
		hasJSONField(raw, "start_time") ||
		hasJSONField(raw, "end_time") ||
		hasJSONField(raw, "points_per_completion") ||
		hasJSONField(raw, "max_per_period") ||
		hasJSONField(raw, "period_unit") ||
		hasJSONField(raw, "period_count") ||
		hasJSONField(raw, "requires_approval")
}

func parseOptionalTime(value *string) (*time.Time, error) {
	if value == nil {
		return nil, nil
	}
	parsed, err := time.Parse(time.RFC3339, *value)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

func hasJSONField(raw map[string]json.RawMessage, field string) bool {
	_, ok := raw[field]
	return ok
}

func isJSONNull(value json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(value), []byte("null"))
}
