package validator

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/s21platform/messenger-service/internal/model"
	"github.com/s21platform/messenger-service/internal/rest/api"
)

const maxContentLength = 500

type Validator struct{}

func New() *Validator {
	return &Validator{}
}

func (v *Validator) ValidateSendMessage(req *api.SendMessageRequest) error {
	if strings.TrimSpace(req.Content) == "" {
		return fmt.Errorf("content cannot be empty")
	}

	if len([]rune(req.Content)) > maxContentLength {
		return fmt.Errorf("content exceeds maximum length of %d characters", maxContentLength)
	}

	if req.TargetKind != string(model.TargetDirect) && req.TargetKind != string(model.TargetGroup) {
		return fmt.Errorf("target kind '%s' is not supported", req.TargetKind)
	}

	if _, err := uuid.Parse(req.TargetId); err != nil {
		return fmt.Errorf("target_id is not a valid uuid")
	}

	return nil
}

func (v *Validator) ValidateConversationRef(ref *api.ConversationRef) error {
	if ref.Kind != string(model.ConversationDirect) && ref.Kind != string(model.ConversationGroup) {
		return fmt.Errorf("conversation kind '%s' is not supported", ref.Kind)
	}

	if _, err := uuid.Parse(ref.Id); err != nil {
		return fmt.Errorf("conversation id is not a valid uuid")
	}

	return nil
}
