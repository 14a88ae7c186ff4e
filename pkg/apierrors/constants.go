package apierrors

const (
	MsgInvalidID      = "invalidID"
	MsgInvalidPayload = "invalidPayload"
	MsgUnauthorized   = "unauthorized"
	MsgForbidden      = "forbidden"
	MsgInternal       = "internalError"

	MsgTaskNotFound   = "taskNotFound"
	MsgTaskArchived   = "taskArchived"
	MsgTaskRestricted = "taskRestricted"
	MsgTaskNotActive  = "taskNotActive"
	MsgTaskExpired    = "taskExpired"
	MsgPeriodConfig   = "periodConfigInvalid"
	MsgLimitReached   = "submissionLimitReached"

	MsgVariantNotFound      = "variantNotFound"
	MsgInvalidVariant       = "invalidVariant"
	MsgVariantPositionTaken = "variantPositionTaken"

	MsgCompletionNotFound = "completionNotFound"
	MsgStatusNotTerminal  = "statusNotTerminal"
	MsgCompletionConflict = "completionConflict"

	MsgMemberNotFound      = "memberNotFound"
	MsgMemberInactive      = "memberInactive"
	MsgTeamNotFound        = "teamNotFound"
	MsgOutsideManagedTeams = "outsideManagedTeams"

	MsgCategoryNotFound  = "categoryNotFound"
	MsgComponentNotFound = "componentNotFound"
	MsgInvalidMetric     = "invalidMetric"
)
