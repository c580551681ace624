package confirm_booking

import (
	"fmt"

	"github.com/m04kA/SMC-TravelService/internal/domain"
)

// validateStepSequence проверяет, что все обязательные шаги workflow
// присутствуют и их первые вхождения идут строго по возрастанию индексов.
// Дубликаты и посторонние шаги допустимы, пока относительный порядок
// обязательных шагов сохраняется.
func validateStepSequence(completedSteps []string) error {
	lastIndex := -1
	for _, required := range domain.RequiredStepSequence {
		idx := indexOf(completedSteps, required)
		if idx < 0 {
			return fmt.Errorf("%w: %s", ErrMissingStep, required)
		}
		if idx <= lastIndex {
			return ErrStepsOutOfOrder
		}
		lastIndex = idx
	}
	return nil
}

// validatePassportAck проверяет, что подтверждение — именно булево true
func validatePassportAck(ack *bool) error {
	if ack == nil || !*ack {
		return ErrPassportAckRequired
	}
	return nil
}

// validateGST проверяет поля GST, только если GST включен
func validateGST(gstEnabled bool, gstNumber, companyName string) error {
	if !gstEnabled {
		return nil
	}
	if gstNumber == "" || companyName == "" {
		return ErrGSTFieldsRequired
	}
	return nil
}

// validateTravellers проверяет, что у каждого туриста заполнены
// обязательные поля
func validateTravellers(travellers []domain.Traveller) error {
	for _, t := range travellers {
		if !t.IsComplete() {
			return ErrIncompleteTraveller
		}
	}
	return nil
}

// indexOf возвращает индекс первого вхождения значения или -1
func indexOf(list []string, value string) int {
	for i, v := range list {
		if v == value {
			return i
		}
	}
	return -1
}
