package order_test

import (
	"fmt"
	"testing"

	"ordersapp/internal/core/domain/model/order"
	"ordersapp/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allStatuses = []order.Status{
	order.StatusCreated,
	order.StatusAccepted,
	order.StatusSent,
	order.StatusDelivered,
	order.StatusCancelled,
}

func TestStatus_CanTransitionTo_AllowedPairs(t *testing.T) {
	allowed := []struct {
		from, to order.Status
	}{
		{order.StatusCreated, order.StatusAccepted},
		{order.StatusCreated, order.StatusCancelled},
		{order.StatusAccepted, order.StatusSent},
		{order.StatusSent, order.StatusDelivered},
	}

	for _, tc := range allowed {
		t.Run(fmt.Sprintf("%s_to_%s", tc.from, tc.to), func(t *testing.T) {
			require.NoError(t, tc.from.CanTransitionTo(tc.to))
		})
	}
}

// The machine accepts exactly the enumerated pairs: everything else is
// rejected with both states named in the message.
func TestStatus_CanTransitionTo_RejectsEveryOtherPair(t *testing.T) {
	allowed := map[order.Status]map[order.Status]bool{
		order.StatusCreated:  {order.StatusAccepted: true, order.StatusCancelled: true},
		order.StatusAccepted: {order.StatusSent: true},
		order.StatusSent:     {order.StatusDelivered: true},
	}

	for _, from := range allStatuses {
		for _, to := range allStatuses {
			if from == to || allowed[from][to] {
				continue
			}

			t.Run(fmt.Sprintf("%s_to_%s", from, to), func(t *testing.T) {
				err := from.CanTransitionTo(to)
				require.Error(t, err)
				require.ErrorIs(t, err, errs.ErrValueIsInvalid)
				assert.Contains(t, err.Error(),
					fmt.Sprintf("invalid order status change %s -> %s", from, to))
			})
		}
	}
}

func TestStatus_CanTransitionTo_SameStatusIsIdempotent(t *testing.T) {
	for _, s := range allStatuses {
		t.Run(s.String(), func(t *testing.T) {
			require.NoError(t, s.CanTransitionTo(s))
		})
	}
}

func TestParseStatus(t *testing.T) {
	s, err := order.ParseStatus("SENT")
	require.NoError(t, err)
	assert.Equal(t, order.StatusSent, s)

	_, err = order.ParseStatus("SHIPPED")
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestStatus_Validate_RejectsUnknown(t *testing.T) {
	err := order.Status("").Validate()
	require.Error(t, err)

	err = order.Status("created").Validate() // case-sensitive symbolic names
	require.Error(t, err)
}
