package service

import (
	"context"
	"time"

	"github.com/pavelpernicka/scoutcomp/internal/core/domain"
	"github.com/pavelpernicka/scoutcomp/internal/core/ports"
)

type TaskService struct {
	tasks   ports.TaskRepository
	ledger  ports.CompletionRepository
	members ports.MemberRepository
	now     func() time.Time
}

func NewTaskService(tasks ports.TaskRepository, ledger ports.CompletionRepository, members ports.MemberRepository) *TaskService {
	return &TaskService{tasks: tasks, ledger: ledger, members: members, now: time.Now}
}

var _ ports.TaskService = (*TaskService)(nil)

func (s *TaskService) List(ctx context.Context, actor domain.Actor, input domain.ListTasksInput) ([]ports.TaskWithProgress, error) {
	now := s.now()
	query := ports.ListTasksQuery{
		Status:          input.Status,
		IncludeArchived: input.IncludeArchived,
		Now:             now,
	}
	if !actor.IsAdmin() {
		query.RestrictTeam = true
		query.VisibleTeamID = actor.TeamID
	}

	tasks, err := s.tasks.List(ctx, query)
	if err != nil {
		return nil, err
	}

	result := make([]ports.TaskWithProgress, 0, len(tasks))
	for _, task := range tasks {
		progress, err := computeProgress(ctx, s.ledger, task, actor.ID, now)
		if err != nil {
			return nil, err
		}
		result = append(result, ports.TaskWithProgress{Task: task, Progress: progress})
	}
	return result, nil
}

func (s *TaskService) Get(ctx context.Context, actor domain.Actor, taskID uint64) (ports.TaskWithProgress, error) {
	task, err := s.tasks.GetByID(ctx, taskID)
	if err != nil {
		return ports.TaskWithProgress{}, err
	}
	if err := assertTaskAccess(task, actor); err != nil {
		return ports.TaskWithProgress{}, err
	}

	progress, err := computeProgress(ctx, s.ledger, task, actor.ID, s.now())
	if err != nil {
		return ports.TaskWithProgress{}, err
	}
	return ports.TaskWithProgress{Task: task, Progress: progress}, nil
}

func (s *TaskService) Create(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error) {
	if err := validatePeriodFields(input.MaxPerPeriod, input.PeriodUnit, input.PeriodCount); err != nil {
		return domain.Task{}, err
	}
	if err := s.ensureTeamExists(ctx, input.TeamID); err != nil {
		return domain.Task{}, err
	}

	startTime := s.now()
	if input.StartTime != nil {
		startTime = *input.StartTime
	}

	return s.tasks.Create(ctx, domain.Task{
		TeamID:              input.TeamID,
		Name:                input.Name,
		Description:         input.Description,
		StartTime:           startTime,
		EndTime:             input.EndTime,
		PointsPerCompletion: input.PointsPerCompletion,
		MaxPerPeriod:        input.MaxPerPeriod,
		PeriodUnit:          input.PeriodUnit,
		PeriodCount:         input.PeriodCount,
		RequiresApproval:    input.RequiresApproval,
	})
}

func (s *TaskService) Update(ctx context.Context, taskID uint64, input domain.UpdateTaskInput) (domain.Task, error) {
	task, err := s.tasks.GetByID(ctx, taskID)
	if err != nil {
		return domain.Task{}, err
	}

	if input.TeamIDSet {
		if err := s.ensureTeamExists(ctx, input.TeamID); err != nil {
			return domain.Task{}, err
		}
		task.TeamID = input.TeamID
	}
	if input.Name != nil {
		task.Name = *input.Name
	}
	if input.DescriptionSet {
		task.Description = input.Description
	}
	if input.StartTime != nil {
		task.StartTime = *input.StartTime
	}
	if input.EndTimeSet {
		task.EndTime = input.EndTime
	}
	if input.PointsPerCompletion != nil {
		task.PointsPerCompletion = *input.PointsPerCompletion
	}
	if input.MaxPerPeriodSet {
		task.MaxPerPeriod = input.MaxPerPeriod
	}
	if input.PeriodUnitSet {
		task.PeriodUnit = input.PeriodUnit
	}
	if input.PeriodCountSet {
		task.PeriodCount = input.PeriodCount
	}
	if input.RequiresApproval != nil {
		task.RequiresApproval = *input.RequiresApproval
	}

	if err := validatePeriodFields(task.MaxPerPeriod, task.PeriodUnit, task.PeriodCount); err != nil {
		return domain.Task{}, err
	}

	return s.tasks.Save(ctx, task)
}

func (s *TaskService) Archive(ctx context.Context, taskID uint64) error {
	task, err := s.tasks.GetByID(ctx, taskID)
	if err != nil {
		return err
	}
	task.IsArchived = true
	_, err = s.tasks.Save(ctx, task)
	return err
}

func (s *TaskService) Unarchive(ctx context.Context, taskID uint64) (domain.Task, error) {
	task, err := s.tasks.GetByID(ctx, taskID)
	if err != nil {
		return domain.Task{}, err
	}
	task.IsArchived = false
	return s.tasks.Save(ctx, task)
}

func (s *TaskService) ForceDelete(ctx context.Context, taskID uint64) error {
	if _, err := s.tasks.GetByID(ctx, taskID); err != nil {
		return err
	}
	return s.tasks.Delete(ctx, taskID)
}

func (s *TaskService) CreateVariant(ctx context.Context, taskID uint64, input domain.CreateVariantInput) (domain.TaskVariant, error) {
	task, err := s.tasks.GetByID(ctx, taskID)
	if err != nil {
		return domain.TaskVariant{}, err
	}

	position := len(task.Variants)
	if input.Position != nil {
		position = *input.Position
	}
	if err := assertVariantPositionFree(task, position, 0); err != nil {
		return domain.TaskVariant{}, err
	}

	return s.tasks.CreateVariant(ctx, domain.TaskVariant{
		TaskID:      task.ID,
		Name:        input.Name,
		Description: input.Description,
		Points:      input.Points,
		Position:    position,
	})
}

func (s *TaskService) UpdateVariant(ctx context.Context, taskID, variantID uint64, input domain.UpdateVariantInput) (domain.TaskVariant, error) {
	task, err := s.tasks.GetByID(ctx, taskID)
	if err != nil {
		return domain.TaskVariant{}, err
	}
	found := task.Variant(variantID)
	if found == nil {
		return domain.TaskVariant{}, domain.ErrVariantNotFound
	}
	variant := *found

	if input.Name != nil {
		variant.Name = *input.Name
	}
	if input.DescriptionSet {
		variant.Description = input.Description
	}
	if input.Points != nil {
		variant.Points = *input.Points
	}
	if input.Position != nil {
		if err := assertVariantPositionFree(task, *input.Position, variant.ID); err != nil {
			return domain.TaskVariant{}, err
		}
		variant.Position = *input.Position
	}

	return s.tasks.SaveVariant(ctx, variant)
}

func (s *TaskService) DeleteVariant(ctx context.Context, taskID, variantID uint64) error {
	variant, err := s.taskVariant(ctx, taskID, variantID)
	if err != nil {
		return err
	}
	return s.tasks.DeleteVariant(ctx, variant.ID)
}

func (s *TaskService) taskVariant(ctx context.Context, taskID, variantID uint64) (domain.TaskVariant, error) {
	task, err := s.tasks.GetByID(ctx, taskID)
	if err != nil {
		return domain.TaskVariant{}, err
	}
	variant := task.Variant(variantID)
	if variant == nil {
		return domain.TaskVariant{}, domain.ErrVariantNotFound
	}
	return *variant, nil
}

func (s *TaskService) ensureTeamExists(ctx context.Context, teamID *uint64) error {
	if teamID == nil {
		return nil
	}
	exists, err := s.members.TeamExists(ctx, *teamID)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrTeamNotFound
	}
	return nil
}

// validatePeriodFields enforces the all-or-nothing recurrence invariant.
func validatePeriodFields(maxPerPeriod *int, periodUnit *domain.PeriodUnit, periodCount *int) error {
	if maxPerPeriod == nil {
		if periodUnit != nil || periodCount != nil {
			return domain.ErrPeriodConfig
		}
		return nil
	}
	if periodUnit == nil || periodCount == nil {
		return domain.ErrPeriodConfig
	}
	if !domain.ValidPeriodUnit(*periodUnit) {
		return domain.ErrPeriodConfig
	}
	// A non-positive count would make the window length zero.
	if *periodCount < 1 {
		return domain.ErrPeriodConfig
	}
	return nil
}

// assertVariantPositionFree rejects a position already held by another variant
// of the task. The schema backs this with a unique key on (task_id, position).
func assertVariantPositionFree(task domain.Task, position int, selfID uint64) error {
	for _, v := range task.Variants {
		if v.Position == position && v.ID != selfID {
			return domain.ErrVariantPosition
		}
	}
	return nil
}

// assertTaskAccess enforces team scoping and the archived guard for reads and
// submissions by non-admin members.
func assertTaskAccess(task domain.Task, actor domain.Actor) error {
	if task.TeamID != nil && !actor.IsAdmin() && (actor.TeamID == nil || *task.TeamID != *actor.TeamID) {
		return domain.ErrTaskRestricted
	}
	if task.IsArchived {
		return domain.ErrTaskArchived
	}
	return nil
}
