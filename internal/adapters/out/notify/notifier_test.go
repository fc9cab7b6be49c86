package notify_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"

	"fanstore/internal/adapters/out/notify"
	"fanstore/internal/core/domain/model/kernel"
	"fanstore/internal/core/domain/model/order"
	"fanstore/internal/core/domain/model/user"
	"fanstore/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingEmailSender struct {
	mu    sync.Mutex
	sent  []string
	errOn int // fail the nth send (1-based), 0 means never
}

func (r *recordingEmailSender) Send(_ context.Context, to, _, _ string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, to)
	if r.errOn != 0 && len(r.sent) == r.errOn {
		return errors.New("smtp unavailable")
	}
	return nil
}

func (r *recordingEmailSender) recipients() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.sent...)
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []ports.StatusChangedEvent
	err    error
}

func (r *recordingPublisher) Publish(_ context.Context, event ports.StatusChangedEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
	return r.err
}

func (r *recordingPublisher) published() []ports.StatusChangedEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]ports.StatusChangedEvent(nil), r.events...)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func buildPaidOrder(t *testing.T) (*order.Order, *user.User) {
	t.Helper()

	customer, err := user.NewUser(kernel.NewUUID(), "Casey Customer", "casey@fanstore.dev", user.RoleCustomer)
	require.NoError(t, err)

	price, err := kernel.NewMoney(4999)
	require.NoError(t, err)
	item, err := order.NewItem(kernel.NewUUID(), "Tower Fan 3000", "", "white", price, 1)
	require.NoError(t, err)
	address, err := order.NewAddress("12 Breeze St", "Coolville", "", "90210", "US", "")
	require.NoError(t, err)

	o, err := order.NewOrder(
		kernel.NewUUID(), customer.ID(), []order.Item{item}, address, order.PaymentMethodCreditCard, 0,
	)
	require.NoError(t, err)

	owner, err := order.NewActor(customer.ID(), user.RoleCustomer)
	require.NoError(t, err)
	require.NoError(t, o.Pay(owner, order.PaymentMethodUnknown))
	return o, customer
}

func TestFanOutNotifier_DeliversEmailAndEvent(t *testing.T) {
	email := &recordingEmailSender{}
	publisher := &recordingPublisher{}
	notifier := notify.NewFanOutNotifier(email, publisher, testLogger())

	o, customer := buildPaidOrder(t)
	notifier.Notify(o, customer)
	notifier.Close()

	require.Len(t, email.recipients(), 1)
	assert.Equal(t, "casey@fanstore.dev", email.recipients()[0])

	events := publisher.published()
	require.Len(t, events, 1)
	assert.True(t, events[0].OrderID.IsEqual(o.ID()))
	assert.Equal(t, order.StatusPaid, events[0].Status)
	assert.Equal(t, o.UpdatedAt(), events[0].UpdatedAt)
	assert.Equal(t, "order_"+o.ID().String(), events[0].Channel())
}

func TestFanOutNotifier_OneDeliveryPerTransition(t *testing.T) {
	email := &recordingEmailSender{}
	publisher := &recordingPublisher{}
	notifier := notify.NewFanOutNotifier(email, publisher, testLogger())

	o, customer := buildPaidOrder(t)
	notifier.Notify(o, customer)
	owner, err := order.NewActor(customer.ID(), user.RoleCustomer)
	require.NoError(t, err)
	require.NoError(t, o.Cancel(owner))
	notifier.Notify(o, customer)
	notifier.Close()

	assert.Len(t, email.recipients(), 2)
	assert.Len(t, publisher.published(), 2)
}

func TestFanOutNotifier_PreservesOrderOfTransitions(t *testing.T) {
	email := &recordingEmailSender{}
	publisher := &recordingPublisher{}
	notifier := notify.NewFanOutNotifier(email, publisher, testLogger())

	o, customer := buildPaidOrder(t)
	notifier.Notify(o, customer)
	owner, err := order.NewActor(customer.ID(), user.RoleCustomer)
	require.NoError(t, err)
	require.NoError(t, o.Cancel(owner))
	notifier.Notify(o, customer)
	notifier.Close()

	events := publisher.published()
	require.Len(t, events, 2)
	assert.Equal(t, order.StatusPaid, events[0].Status)
	assert.Equal(t, order.StatusCancelled, events[1].Status)
}

func TestFanOutNotifier_PublishFailureDoesNotBlockEmail(t *testing.T) {
	email := &recordingEmailSender{}
	publisher := &recordingPublisher{err: errors.New("no subscribers")}
	notifier := notify.NewFanOutNotifier(email, publisher, testLogger())

	o, customer := buildPaidOrder(t)
	notifier.Notify(o, customer)
	notifier.Close()

	assert.Len(t, email.recipients(), 1)
}

func TestFanOutNotifier_EmailFailureIsSwallowed(t *testing.T) {
	email := &recordingEmailSender{errOn: 1}
	publisher := &recordingPublisher{}
	notifier := notify.NewFanOutNotifier(email, publisher, testLogger())

	o, customer := buildPaidOrder(t)
	notifier.Notify(o, customer)

	// second transition still goes through after the first email failed
	owner, err := order.NewActor(customer.ID(), user.RoleCustomer)
	require.NoError(t, err)
	require.NoError(t, o.Cancel(owner))
	notifier.Notify(o, customer)
	notifier.Close()

	assert.Len(t, email.recipients(), 2)
	assert.Len(t, publisher.published(), 2)
}

func TestFanOutNotifier_NotifyAfterCloseIsIgnored(t *testing.T) {
	email := &recordingEmailSender{}
	publisher := &recordingPublisher{}
	notifier := notify.NewFanOutNotifier(email, publisher, testLogger())
	notifier.Close()

	o, customer := buildPaidOrder(t)
	notifier.Notify(o, customer)

	assert.Empty(t, email.recipients())
	assert.Empty(t, publisher.published())
}

func TestFanOutNotifier_CloseTwiceIsSafe(t *testing.T) {
	notifier := notify.NewFanOutNotifier(&recordingEmailSender{}, &recordingPublisher{}, testLogger())
	notifier.Close()
	notifier.Close()
}
