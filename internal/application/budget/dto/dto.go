package dto

import (
	"time"

	"github.com/creatorfund/creatorfund/internal/domain/budget"
	vo "github.com/creatorfund/creatorfund/internal/domain/payment/valueobjects"
	"github.com/creatorfund/creatorfund/internal/shared/biztime"
)

type AllocationDTO struct {
	ID                   uint      `json:"id"`
	SupporterID          uint      `json:"supporter_id"`
	AllocationAmount     int64     `json:"allocation_amount"`
	UndistributedAmount  int64     `json:"undistributed_amount"`
	AllocationAmountText string    `json:"allocation_amount_text"`
	CreatedAt            time.Time `json:"created_at"`
	// CreatedAtLocal is CreatedAt in the business timezone, for display.
	CreatedAtLocal       string    `json:"created_at_local,omitempty"`
}

// DistributionResultDTO reports one calculate-and-distribute cycle. A no-op
// cycle is a success with Distributed false.
type DistributionResultDTO struct {
	SupporterID  uint           `json:"supporter_id"`
	Distributed  bool           `json:"distributed"`
	Outcome      string         `json:"outcome"`
	PerCreator   int64          `json:"per_creator"`
	CreatorCount int            `json:"creator_count"`
	Allocation   *AllocationDTO `json:"allocation,omitempty"`
}

// BatchResultDTO summarizes a run over all supporters.
type BatchResultDTO struct {
	Processed   int            `json:"processed"`
	Distributed int            `json:"distributed"`
	Failed      int            `json:"failed"`
	Outcomes    map[string]int `json:"outcomes"`
}

func ToAllocationDTO(a *budget.Allocation, currency string) *AllocationDTO {
	if a == nil {
		return nil
	}
	text := ""
	if m, err := vo.NewMoney(a.AllocationAmount(), currency); err == nil {
		text = m.String()
	}
	result := &AllocationDTO{
		ID:                   a.ID(),
		SupporterID:          a.SupporterID(),
		AllocationAmount:     a.AllocationAmount(),
		UndistributedAmount:  a.UndistributedAmount(),
		AllocationAmountText: text,
		CreatedAt:            a.CreatedAt(),
	}
	if !a.CreatedAt().IsZero() {
		result.CreatedAtLocal = biztime.FormatInBizTimezone(a.CreatedAt(), time.RFC3339)
	}
	return result
}

func ToAllocationDTOList(allocations []*budget.Allocation, currency string) []*AllocationDTO {
	result := make([]*AllocationDTO, 0, len(allocations))
	for _, a := range allocations {
		result = append(result, ToAllocationDTO(a, currency))
	}
	return result
}

func ToDistributionResultDTO(supporterID uint, outcome budget.Outcome, d *budget.Distribution, currency string) *DistributionResultDTO {
	result := &DistributionResultDTO{
		SupporterID: supporterID,
		Outcome:     outcome.String(),
	}
	if d == nil {
		return result
	}
	result.Outcome = d.Outcome.String()
	result.Distributed = d.Distributed()
	if result.Distributed {
		result.PerCreator = d.PerCreator
		result.CreatorCount = len(d.Credited)
		result.Allocation = ToAllocationDTO(d.Allocation, currency)
	}
	return result
}
