package ingestion

import (
	"context"
	"errors"
	"sync"

	domainVehicle "fleet-maintenance-manager/internal/domain/vehicle"
	"fleet-maintenance-manager/internal/logger"

	"go.uber.org/zap"
)

// Processor drains odometer messages through a small worker pool and applies
// them to the vehicle store. Readings for unknown vehicles and readings that
// move the odometer backwards are dropped with a log line.
type Processor struct {
	vehicleRepo domainVehicle.Repository

	workerCount int
	messageChan chan *OdometerMessage

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu      sync.Mutex
	stopped bool
}

func NewProcessor(vehicleRepo domainVehicle.Repository, workerCount, bufferSize int) *Processor {
	if workerCount <= 0 {
		workerCount = 2
	}
	if bufferSize <= 0 {
		bufferSize = 256
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &Processor{
		vehicleRepo: vehicleRepo,
		workerCount: workerCount,
		messageChan: make(chan *OdometerMessage, bufferSize),
		ctx:         ctx,
		cancel:      cancel,
	}
}

// Start launches the worker pool.
func (p *Processor) Start() {
	logger.Info("Starting odometer processor",
		zap.Int("workers", p.workerCount),
		zap.Int("buffer_size", cap(p.messageChan)),
	)

	for i := 0; i < p.workerCount; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

// Stop closes intake first, then lets the workers drain the buffer against a
// still-live context before cancelling it. Safe to call more than once.
func (p *Processor) Stop() {
	p.mu.Lock()
	if p.stopped {
		p.mu.Unlock()
		return
	}
	p.stopped = true
	close(p.messageChan)
	p.mu.Unlock()

	p.wg.Wait()
	p.cancel()
	logger.Info("Odometer processor stopped")
}

// Process queues an odometer message. A full buffer drops the message rather
// than blocking the MQTT callback; messages arriving after Stop are dropped.
func (p *Processor) Process(msg *OdometerMessage) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.stopped {
		return
	}

	select {
	case p.messageChan <- msg:
	default:
		logger.Warn("Odometer buffer full, dropping message",
			zap.String("vehicle_id", msg.VehicleID.String()),
		)
	}
}

func (p *Processor) worker() {
	defer p.wg.Done()

	for msg := range p.messageChan {
		p.apply(msg)
	}
}

func (p *Processor) apply(msg *OdometerMessage) {
	err := p.vehicleRepo.UpdateKilometers(p.ctx, msg.VehicleID, msg.Kilometers)
	switch {
	case err == nil:
		logger.Debug("Odometer updated",
			zap.String("vehicle_id", msg.VehicleID.String()),
			zap.Float64("kilometers", msg.Kilometers),
		)
	case errors.Is(err, domainVehicle.ErrVehicleNotFound):
		logger.Warn("Odometer reading for unknown vehicle",
			zap.String("vehicle_id", msg.VehicleID.String()),
		)
	case errors.Is(err, domainVehicle.ErrOdometerRegression):
		logger.Warn("Odometer reading moved backwards, ignored",
			zap.String("vehicle_id", msg.VehicleID.String()),
			zap.Float64("kilometers", msg.Kilometers),
		)
	default:
		logger.Error("Failed to apply odometer reading",
			zap.String("vehicle_id", msg.VehicleID.String()),
			zap.Error(err),
		)
	}
}
