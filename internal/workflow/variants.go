package workflow

import "github.com/krishisathi/backend/internal/domain"

// IssueLifecycle: open -> in_progress -> resolved. closed is a terminal
// freeze state with no inbound edge.
var IssueLifecycle = NewLifecycle(Definition[domain.IssueStatus]{
	Name: "issue",
	Statuses: []domain.IssueStatus{
		domain.IssueStatusOpen,
		domain.IssueStatusInProgress,
		domain.IssueStatusResolved,
		domain.IssueStatusClosed,
	},
	Edges: map[domain.IssueStatus][]domain.IssueStatus{
		domain.IssueStatusOpen:       {domain.IssueStatusInProgress},
		domain.IssueStatusInProgress: {domain.IssueStatusResolved},
	},
	Terminal:     []domain.IssueStatus{domain.IssueStatusResolved, domain.IssueStatusClosed},
	ThreadClosed: []domain.IssueStatus{domain.IssueStatusResolved, domain.IssueStatusClosed},
})

// ApplicationLifecycle: pending -> approved | rejected, both terminal.
var ApplicationLifecycle = NewLifecycle(Definition[domain.ApplicationStatus]{
	Name: "application",
	Statuses: []domain.ApplicationStatus{
		domain.ApplicationStatusPending,
		domain.ApplicationStatusApproved,
		domain.ApplicationStatusRejected,
	},
	Edges: map[domain.ApplicationStatus][]domain.ApplicationStatus{
		domain.ApplicationStatusPending: {domain.ApplicationStatusApproved, domain.ApplicationStatusRejected},
	},
	Terminal:     []domain.ApplicationStatus{domain.ApplicationStatusApproved, domain.ApplicationStatusRejected},
	ThreadClosed: []domain.ApplicationStatus{domain.ApplicationStatusApproved, domain.ApplicationStatusRejected},
})

// IssueThread is bidirectional: the owning farmer and admins may reply.
var IssueThread = NewThread(IssueLifecycle, OwnerOrAdmin)

// ApplicationThread is admin-to-farmer only.
var ApplicationThread = NewThread(ApplicationLifecycle, AdminOnly)
