package handler

import (
	"context"
	"errors"
)

var ErrNoPendingAccount = errors.New("no account with pending notifications")

// ReconciliationExecution processes the pending notifications of one free account.
func (h *ReconciliationHandler) ReconciliationExecution(ctx context.Context) error {
	acquired, accountID, err := h.Usecase.TryAcquireLock(ctx)
	if err != nil {
		return err
	}

	if !acquired {
		return ErrNoPendingAccount
	}

	defer h.Usecase.UnlockProcess(ctx, accountID)

	return h.Usecase.ProcessNotificationJob(ctx, accountID)
}
