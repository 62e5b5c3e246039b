package poller

import (
	"context"
	"sync"
	"time"

	"hotel_manager/model"
)

const (
	DefaultInterval = 30 * time.Second
	DefaultTimeout  = 10 * time.Second
)

// FetchFunc tải danh sách đơn hiện tại (một round-trip mạng).
type FetchFunc func(ctx context.Context) ([]model.Order, error)

// Coordinator giữ danh sách đơn trên client luôn tươi: fetch ngay khi Start,
// sau đó theo chu kỳ; Refresh() fetch ngay lập tức thay vì chờ tick kế tiếp
// (dùng sau khi bấm thao tác nhanh). Response của fetch cũ về muộn hơn fetch
// mới thì bị bỏ, tránh ghi đè dữ liệu mới bằng dữ liệu cũ.
type Coordinator struct {
	fetch    FetchFunc
	interval time.Duration
	timeout  time.Duration

	// callback chạy trên goroutine của fetch, không được block lâu
	OnOrders func([]model.Order)
	OnError  func(error)

	mu      sync.Mutex
	seq     uint64 // fetch mới nhất đã phát
	started bool

	// deliverMu giữ kiểm tra stale và callback trong một bước, response cũ
	// không thể chen vào giao sau response mới
	deliverMu sync.Mutex

	refresh  chan struct{}
	stop     chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

type Option func(*Coordinator)

func WithInterval(d time.Duration) Option {
	return func(c *Coordinator) { c.interval = d }
}

func WithTimeout(d time.Duration) Option {
	return func(c *Coordinator) { c.timeout = d }
}

func NewCoordinator(fetch FetchFunc, opts ...Option) *Coordinator {
	c := &Coordinator{
		fetch:    fetch,
		interval: DefaultInterval,
		timeout:  DefaultTimeout,
		refresh:  make(chan struct{}, 1),
		stop:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Coordinator) Start(ctx context.Context) {
	c.mu.Lock()
	if c.started {
		c.mu.Unlock()
		return
	}
	c.started = true
	c.mu.Unlock()

	c.wg.Add(1)
	go c.loop(ctx)
}

func (c *Coordinator) loop(ctx context.Context) {
	defer c.wg.Done()

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	c.launchFetch(ctx)
	for {
		select {
		case <-ticker.C:
			c.launchFetch(ctx)
		case <-c.refresh:
			// fetch ngay, và reset chu kỳ để không fetch đúp liền sau đó
			ticker.Reset(c.interval)
			c.launchFetch(ctx)
		case <-c.stop:
			return
		case <-ctx.Done():
			return
		}
	}
}

// launchFetch chạy fetch trên goroutine riêng để một response chậm
// không chặn tick kế tiếp; seq quyết định response nào còn giá trị.
func (c *Coordinator) launchFetch(ctx context.Context) {
	c.mu.Lock()
	c.seq++
	seq := c.seq
	c.mu.Unlock()

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()

		fetchCtx, cancel := context.WithTimeout(ctx, c.timeout)
		defer cancel()

		orders, err := c.fetch(fetchCtx)

		select {
		case <-c.stop:
			return
		default:
		}

		c.deliverMu.Lock()
		defer c.deliverMu.Unlock()

		c.mu.Lock()
		stale := seq != c.seq
		c.mu.Unlock()
		if stale {
			return
		}

		if err != nil {
			// lỗi tạm thời: báo lên UI, vòng poll sau tự thử lại
			if c.OnError != nil {
				c.OnError(err)
			}
			return
		}
		if c.OnOrders != nil {
			c.OnOrders(orders)
		}
	}()
}

// Refresh yêu cầu fetch ngay lập tức, không chờ tick. Không block;
// nếu đã có yêu cầu refresh đang chờ thì gộp làm một.
func (c *Coordinator) Refresh() {
	select {
	case c.refresh <- struct{}{}:
	default:
	}
}

// Stop dừng vòng poll và chờ các fetch đang chạy kết thúc. Idempotent.
func (c *Coordinator) Stop() {
	c.stopOnce.Do(func() {
		close(c.stop)
	})
	c.wg.Wait()
}
