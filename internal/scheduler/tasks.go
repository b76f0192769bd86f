package scheduler

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const TaskBidExpiry = "bids.expire"

type BidExpiryPayload struct {
	ProjectID string `json:"projectId"`
}

func NewBidExpiryTask(payload BidExpiryPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskBidExpiry, data), nil
}

func ParseBidExpiryPayload(task *asynq.Task) (BidExpiryPayload, error) {
	var payload BidExpiryPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return BidExpiryPayload{}, err
	}
	return payload, nil
}
