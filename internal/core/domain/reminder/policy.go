package reminder

import "errors"

var ErrParseDeliveryPolicy = errors.New("invalid delivery policy")

// DeliveryPolicy decides what happens to an entry after a failed delivery
// attempt. SingleAttempt keeps the reference behavior: the entry is
// consumed on the first attempt even if it failed, so several ticks within
// the matching minute cause exactly one send. Retry leaves failed entries
// pending until a send succeeds.
type DeliveryPolicy struct {
	v string
}

func (p DeliveryPolicy) String() string {
	return p.v
}

func ParseDeliveryPolicy(value string) (DeliveryPolicy, error) {
	switch value {
	case "single-attempt":
		return PolicySingleAttempt, nil
	case "retry":
		return PolicyRetry, nil
	default:
		return DeliveryPolicy{}, ErrParseDeliveryPolicy
	}
}

var (
	PolicySingleAttempt = DeliveryPolicy{v: "single-attempt"}
	PolicyRetry         = DeliveryPolicy{v: "retry"}
)
