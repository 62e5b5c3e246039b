package poller

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"hotel_manager/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func waitFor(t *testing.T, ch <-chan struct{}, msg string) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(2 * time.Second):
		t.Fatal(msg)
	}
}

func TestStartFetchesImmediatelyThenOnInterval(t *testing.T) {
	fetched := make(chan struct{}, 10)
	c := NewCoordinator(func(ctx context.Context) ([]model.Order, error) {
		fetched <- struct{}{}
		return nil, nil
	}, WithInterval(20*time.Millisecond))

	c.Start(context.Background())
	defer c.Stop()

	// fetch đầu tiên không chờ tick
	waitFor(t, fetched, "không fetch ngay khi Start")
	waitFor(t, fetched, "không fetch theo chu kỳ")
	waitFor(t, fetched, "không fetch theo chu kỳ")
}

func TestRefreshFetchesWithoutWaitingForTick(t *testing.T) {
	fetched := make(chan struct{}, 10)
	c := NewCoordinator(func(ctx context.Context) ([]model.Order, error) {
		fetched <- struct{}{}
		return nil, nil
	}, WithInterval(time.Hour))

	c.Start(context.Background())
	defer c.Stop()

	waitFor(t, fetched, "không fetch ngay khi Start")

	c.Refresh()
	waitFor(t, fetched, "Refresh không kích hoạt fetch")

	// Refresh dồn dập chỉ gộp thành một yêu cầu đang chờ
	c.Refresh()
	c.Refresh()
	c.Refresh()
	waitFor(t, fetched, "Refresh không kích hoạt fetch")
	select {
	case <-fetched:
		t.Fatal("refresh bị nhân đôi thay vì gộp")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestStopHaltsPolling(t *testing.T) {
	var calls atomic.Int64
	c := NewCoordinator(func(ctx context.Context) ([]model.Order, error) {
		calls.Add(1)
		return nil, nil
	}, WithInterval(10*time.Millisecond))

	c.Start(context.Background())
	time.Sleep(50 * time.Millisecond)
	c.Stop()
	c.Stop() // idempotent

	after := calls.Load()
	require.Positive(t, after)
	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, after, calls.Load(), "vẫn fetch sau khi Stop")
}

// Response của fetch cũ về sau fetch mới thì phải bị bỏ.
func TestStaleResponseDiscarded(t *testing.T) {
	release := make(chan struct{})
	var calls atomic.Int64

	c := NewCoordinator(func(ctx context.Context) ([]model.Order, error) {
		if calls.Add(1) == 1 {
			// fetch đầu treo lại, trả về sau fetch thứ hai
			<-release
			return []model.Order{{PublicCode: "SVC-CU"}}, nil
		}
		return []model.Order{{PublicCode: "SVC-MOI"}}, nil
	}, WithInterval(time.Hour))

	var mu sync.Mutex
	var delivered [][]model.Order
	got := make(chan struct{}, 10)
	c.OnOrders = func(orders []model.Order) {
		mu.Lock()
		delivered = append(delivered, orders)
		mu.Unlock()
		got <- struct{}{}
	}

	c.Start(context.Background())
	defer c.Stop()

	// chờ fetch thứ hai vượt mặt fetch đầu
	require.Eventually(t, func() bool { return calls.Load() >= 1 }, 2*time.Second, 5*time.Millisecond)
	c.Refresh()
	waitFor(t, got, "fetch mới không giao kết quả")

	close(release)
	select {
	case <-got:
		t.Fatal("kết quả của fetch cũ không bị bỏ")
	case <-time.After(100 * time.Millisecond):
	}

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, delivered, 1)
	require.Len(t, delivered[0], 1)
	assert.Equal(t, "SVC-MOI", delivered[0][0].PublicCode)
}

// Kiểm tra stale và giao kết quả là một bước: dưới bão Refresh các callback
// không bao giờ chồng lên nhau, nên response cũ không thể giao sau response mới.
func TestDeliveryIsSerialized(t *testing.T) {
	c := NewCoordinator(func(ctx context.Context) ([]model.Order, error) {
		return []model.Order{{PublicCode: "SVC-OK"}}, nil
	}, WithInterval(2*time.Millisecond))

	var inFlight atomic.Int32
	var overlapped atomic.Bool
	c.OnOrders = func(orders []model.Order) {
		if inFlight.Add(1) > 1 {
			overlapped.Store(true)
		}
		time.Sleep(time.Millisecond)
		inFlight.Add(-1)
	}

	c.Start(context.Background())
	for i := 0; i < 50; i++ {
		c.Refresh()
		time.Sleep(time.Millisecond)
	}
	c.Stop()

	assert.False(t, overlapped.Load(), "hai callback chạy song song")
}

// Lỗi fetch chỉ báo qua OnError, vòng poll vẫn tiếp tục.
func TestFetchErrorKeepsPolling(t *testing.T) {
	var calls atomic.Int64
	c := NewCoordinator(func(ctx context.Context) ([]model.Order, error) {
		if calls.Add(1) == 1 {
			return nil, errors.New("mạng chập chờn")
		}
		return []model.Order{{PublicCode: "SVC-OK"}}, nil
	}, WithInterval(20*time.Millisecond))

	gotErr := make(chan error, 1)
	c.OnError = func(err error) {
		select {
		case gotErr <- err:
		default:
		}
	}
	gotOrders := make(chan struct{}, 1)
	c.OnOrders = func(orders []model.Order) {
		select {
		case gotOrders <- struct{}{}:
		default:
		}
	}

	c.Start(context.Background())
	defer c.Stop()

	select {
	case err := <-gotErr:
		assert.EqualError(t, err, "mạng chập chờn")
	case <-time.After(2 * time.Second):
		t.Fatal("OnError không được gọi")
	}
	waitFor(t, gotOrders, "không hồi phục sau lỗi")
}

func TestFetchTimeout(t *testing.T) {
	done := make(chan struct{}, 1)
	c := NewCoordinator(func(ctx context.Context) ([]model.Order, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	}, WithInterval(time.Hour), WithTimeout(20*time.Millisecond))

	c.OnError = func(err error) {
		assert.True(t, errors.Is(err, context.DeadlineExceeded))
		select {
		case done <- struct{}{}:
		default:
		}
	}

	c.Start(context.Background())
	defer c.Stop()

	waitFor(t, done, "fetch treo không bị cắt theo timeout")
}
