package task

import (
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
)

const (
	ApprovalEmailTaskName  = "approvalEmailTask"
	ApprovalEmailQueueName = "approvalEmailQueue"
)

type ApprovalEmail struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
}

func NewApprovalEmailTask(email string, firstName string) (*asynq.Task, error) {
	var data ApprovalEmail
	data.Email = email
	data.FirstName = firstName

	payload, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("json data marshal failed: %w", err)
	}

	return asynq.NewTask(
		ApprovalEmailTaskName,
		payload,
		asynq.MaxRetry(5),
		asynq.Queue(ApprovalEmailQueueName),
	), nil
}
