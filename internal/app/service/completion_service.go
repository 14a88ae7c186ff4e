package service

import (
	"context"
	"time"

	"github.com/pavelpernicka/scoutcomp/internal/core/domain"
	"github.com/pavelpernicka/scoutcomp/internal/core/ports"
	"github.com/pavelpernicka/scoutcomp/pkg/translator"
)

type CompletionService struct {
	ledger  ports.CompletionRepository
	tasks   ports.TaskRepository
	members ports.MemberRepository
	now     func() time.Time
}

func NewCompletionService(ledger ports.CompletionRepository, tasks ports.TaskRepository, members ports.MemberRepository) *CompletionService {
	return &CompletionService{ledger: ledger, tasks: tasks, members: members, now: time.Now}
}

var _ ports.CompletionService = (*CompletionService)(nil)

// Submit records a member's own completion claim. The remaining-allowance
// check and the insert are not serialized against concurrent submissions;
// two requests racing past the check near a window boundary can overshoot
// the limit. Accepted limitation, see DESIGN.md.
func (s *CompletionService) Submit(ctx context.Context, actor domain.Actor, input domain.SubmitInput) (domain.Completion, error) {
	task, err := s.tasks.GetByID(ctx, input.TaskID)
	if err != nil {
		return domain.Completion{}, err
	}
	if err := assertTaskAccess(task, actor); err != nil {
		return domain.Completion{}, err
	}

	now := s.now()
	if task.StartTime.After(now) {
		return domain.Completion{}, domain.ErrTaskNotActive
	}
	if task.EndTime != nil && task.EndTime.Before(now) {
		return domain.Completion{}, domain.ErrTaskExpired
	}

	variant, err := resolveVariant(task, input.VariantID)
	if err != nil {
		return domain.Completion{}, err
	}

	count := input.Count
	if count < 1 {
		count = 1
	}

	progress, err := computeProgress(ctx, s.ledger, task, actor.ID, now)
	if err != nil {
		return domain.Completion{}, err
	}
	if progress.Remaining != nil && count > *progress.Remaining {
		return domain.Completion{}, domain.ErrLimitExceeded
	}

	completion := domain.Completion{
		TaskID:      task.ID,
		MemberID:    actor.ID,
		VariantID:   input.VariantID,
		Status:      domain.CompletionPending,
		SubmittedAt: now,
		MemberNote:  input.MemberNote,
		Count:       count,
	}
	if !task.RequiresApproval {
		completion.Status = domain.CompletionApproved
		completion.PointsAwarded = domain.AwardPoints(task, variant, count)
		completion.ReviewedAt = &now
	}

	// Self-submissions never notify; notifications are reserved for
	// admin-mediated events.
	return s.ledger.Create(ctx, completion, nil)
}

func (s *CompletionService) ListTaskSubmissions(ctx context.Context, actor domain.Actor, taskID uint64) ([]domain.Completion, error) {
	task, err := s.tasks.GetByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if err := assertTaskAccess(task, actor); err != nil {
		return nil, err
	}

	var memberFilter *uint64
	if !actor.IsAdmin() {
		memberFilter = &actor.ID
	}
	return s.ledger.ListByTask(ctx, task.ID, memberFilter)
}

func (s *CompletionService) ListPending(ctx context.Context, actor domain.Actor) ([]domain.Completion, error) {
	if actor.IsGroupAdmin() {
		if len(actor.ManagedTeamIDs) == 0 {
			return []domain.Completion{}, nil
		}
		return s.ledger.ListPending(ctx, actor.ManagedTeamIDs)
	}
	return s.ledger.ListPending(ctx, nil)
}

// Review moves a completion to a terminal status. Re-reviewing an already
// terminal completion is allowed so admins can correct mistakes; only the
// target status is constrained.
func (s *CompletionService) Review(ctx context.Context, actor domain.Actor, completionID uint64, input domain.ReviewInput) (domain.Completion, error) {
	if input.Status == domain.CompletionPending || !domain.ValidCompletionStatus(input.Status) {
		return domain.Completion{}, domain.ErrStatusNotTerminal
	}

	completion, err := s.ledger.GetByID(ctx, completionID)
	if err != nil {
		return domain.Completion{}, err
	}

	task, member, err := s.relatedTaskAndMember(ctx, completion)
	if err != nil {
		return domain.Completion{}, err
	}

	if actor.IsGroupAdmin() && !actor.Manages(member.TeamID) {
		return domain.Completion{}, domain.ErrOutsideManagedTeams
	}

	now := s.now()
	completion.Status = input.Status
	completion.AdminNote = input.AdminNote
	completion.ReviewerID = &actor.ID
	completion.ReviewedAt = &now

	var message string
	if input.Status == domain.CompletionApproved {
		variant, err := resolveVariant(task, completion.VariantID)
		if err != nil {
			return domain.Completion{}, err
		}
		completion.PointsAwarded = domain.AwardPoints(task, variant, completion.Count)
		message = translator.CompletionApprovedMessage(member.PreferredLanguage, task.Name, completion.Count, completion.PointsAwarded)
	} else {
		completion.PointsAwarded = 0
		message = translator.CompletionRejectedMessage(member.PreferredLanguage, task.Name, input.AdminNote)
	}

	notification := &domain.Notification{
		UserID:   completion.MemberID,
		Message:  message,
		SenderID: &actor.ID,
	}
	return s.ledger.Save(ctx, completion, notification)
}

func (s *CompletionService) ListMine(ctx context.Context, actor domain.Actor) ([]domain.Completion, error) {
	return s.ledger.ListByMember(ctx, actor.ID)
}

func (s *CompletionService) ListForMember(ctx context.Context, actor domain.Actor, memberID uint64) ([]domain.Completion, error) {
	member, err := s.members.GetByID(ctx, memberID)
	if err != nil {
		return nil, err
	}
	if actor.IsGroupAdmin() && !groupAdminCoversMember(actor, member) {
		return nil, domain.ErrOutsideManagedTeams
	}
	return s.ledger.ListByMember(ctx, memberID)
}

func (s *CompletionService) AdminCreate(ctx context.Context, actor domain.Actor, memberID uint64, input domain.AdminCreateCompletionInput) (domain.Completion, error) {
	member, err := s.members.GetByID(ctx, memberID)
	if err != nil {
		return domain.Completion{}, err
	}
	if actor.IsGroupAdmin() && !groupAdminCoversMember(actor, member) {
		return domain.Completion{}, domain.ErrOutsideManagedTeams
	}

	task, err := s.tasks.GetByID(ctx, input.TaskID)
	if err != nil {
		return domain.Completion{}, err
	}
	if actor.IsGroupAdmin() && task.TeamID != nil && !actor.Manages(task.TeamID) {
		return domain.Completion{}, domain.ErrOutsideManagedTeams
	}

	status := input.Status
	if status == "" {
		status = domain.CompletionApproved
	}
	if status == domain.CompletionPending || !domain.ValidCompletionStatus(status) {
		return domain.Completion{}, domain.ErrStatusNotTerminal
	}

	variant, err := resolveVariant(task, input.VariantID)
	if err != nil {
		return domain.Completion{}, err
	}

	count := input.Count
	if count < 1 {
		count = 1
	}

	now := s.now()
	completion := domain.Completion{
		TaskID:      task.ID,
		MemberID:    member.ID,
		VariantID:   input.VariantID,
		Status:      status,
		SubmittedAt: now,
		ReviewedAt:  &now,
		ReviewerID:  &actor.ID,
		MemberNote:  input.MemberNote,
		AdminNote:   input.AdminNote,
		Count:       count,
	}

	var message string
	if status == domain.CompletionApproved {
		completion.PointsAwarded = domain.AwardPoints(task, variant, count)
		message = translator.AdminCompletionApprovedMessage(member.PreferredLanguage, task.Name, count, completion.PointsAwarded)
	} else {
		message = translator.AdminCompletionRejectedMessage(member.PreferredLanguage, task.Name, input.AdminNote)
	}

	notification := &domain.Notification{
		UserID:   member.ID,
		Message:  message,
		SenderID: &actor.ID,
	}
	return s.ledger.Create(ctx, completion, notification)
}

func (s *CompletionService) AdminUpdate(ctx context.Context, actor domain.Actor, memberID, completionID uint64, input domain.AdminUpdateCompletionInput) (domain.Completion, error) {
	completion, err := s.ledger.GetForMember(ctx, completionID, memberID)
	if err != nil {
		return domain.Completion{}, err
	}

	member, err := s.members.GetByID(ctx, completion.MemberID)
	if err != nil {
		return domain.Completion{}, err
	}
	if actor.IsGroupAdmin() && !actor.Manages(member.TeamID) {
		return domain.Completion{}, domain.ErrOutsideManagedTeams
	}

	if input.Count == nil && input.Status == nil && input.AdminNote == nil {
		return completion, nil
	}
	if input.Status != nil && (*input.Status == domain.CompletionPending || !domain.ValidCompletionStatus(*input.Status)) {
		return domain.Completion{}, domain.ErrStatusNotTerminal
	}

	if input.Count != nil {
		completion.Count = *input.Count
	}

	statusChanged := false
	if input.Status != nil && completion.Status != *input.Status {
		completion.Status = *input.Status
		now := s.now()
		completion.ReviewedAt = &now
		completion.ReviewerID = &actor.ID
		statusChanged = true
	}

	if input.AdminNote != nil {
		completion.AdminNote = input.AdminNote
	}

	if input.Count != nil || statusChanged {
		if completion.Status == domain.CompletionApproved {
			task, err := s.tasks.GetByID(ctx, completion.TaskID)
			if err != nil {
				return domain.Completion{}, err
			}
			variant, err := resolveVariant(task, completion.VariantID)
			if err != nil {
				return domain.Completion{}, err
			}
			completion.PointsAwarded = domain.AwardPoints(task, variant, completion.Count)
		} else {
			completion.PointsAwarded = 0
		}
	}

	return s.ledger.Save(ctx, completion, nil)
}

func (s *CompletionService) AdminDelete(ctx context.Context, actor domain.Actor, memberID, completionID uint64) error {
	completion, err := s.ledger.GetForMember(ctx, completionID, memberID)
	if err != nil {
		return err
	}

	member, err := s.members.GetByID(ctx, completion.MemberID)
	if err != nil {
		return err
	}
	if actor.IsGroupAdmin() && !actor.Manages(member.TeamID) {
		return domain.ErrOutsideManagedTeams
	}

	return s.ledger.Delete(ctx, completion.ID)
}

func (s *CompletionService) relatedTaskAndMember(ctx context.Context, completion domain.Completion) (domain.Task, domain.Member, error) {
	task, err := s.tasks.GetByID(ctx, completion.TaskID)
	if err != nil {
		if err == domain.ErrTaskNotFound {
			return domain.Task{}, domain.Member{}, domain.ErrCompletionOrphaned
		}
		return domain.Task{}, domain.Member{}, err
	}
	member, err := s.members.GetByID(ctx, completion.MemberID)
	if err != nil {
		if err == domain.ErrMemberNotFound {
			return domain.Task{}, domain.Member{}, domain.ErrCompletionOrphaned
		}
		return domain.Task{}, domain.Member{}, err
	}
	return task, member, nil
}

// resolveVariant validates an optional variant reference against its task.
func resolveVariant(task domain.Task, variantID *uint64) (*domain.TaskVariant, error) {
	if variantID == nil {
		return nil, nil
	}
	variant := task.Variant(*variantID)
	if variant == nil {
		return nil, domain.ErrInvalidVariant
	}
	return variant, nil
}

// groupAdminCoversMember mirrors the on-behalf authorization rule: a group
// admin with no managed teams covers nobody, a member without a team is
// reachable by any group admin that manages at least one team.
func groupAdminCoversMember(actor domain.Actor, member domain.Member) bool {
	if len(actor.ManagedTeamIDs) == 0 {
		return false
	}
	if member.TeamID == nil {
		return true
	}
	return actor.Manages(member.TeamID)
}
