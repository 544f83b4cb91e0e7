package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tangobridge/tangobridge/pkg/acquire"
	"github.com/tangobridge/tangobridge/pkg/wire"
)

// hinter is implemented by objects that suggest fields for display.
type hinter interface {
	Hints() []string
}

// Count reads every detector num times, waiting delay between points, and
// returns the run uid.
//
// A failed Describe or Read ends the run with exit status "fail" and a
// cancelled ctx ends it with "abort". In both cases a RunStop is still
// emitted and the error is returned together with the run uid.
func (re *RunEngine) Count(ctx context.Context, detectors []acquire.Readable, num int, delay time.Duration, md map[string]any) (string, error) {
	if num <= 0 {
		return "", ErrInvalidNum
	}
	if len(detectors) == 0 {
		return "", ErrNoDetectors
	}

	names := make([]string, len(detectors))
	for i, det := range detectors {
		names[i] = det.Name()
	}

	scanID, metadata := re.nextScan(md)
	start := &wire.RunStart{
		UID:       re.newUID(),
		Time:      re.now(),
		PlanName:  "count",
		Detectors: names,
		NumPoints: num,
		ScanID:    scanID,
		Metadata:  metadata,
	}
	re.emit(wire.KindStart, start)
	re.logger.Info("run started", "uid", start.UID, "plan", start.PlanName, "scan_id", scanID, "detectors", names)

	r := &run{engine: re, start: start}

	desc, err := re.describe(ctx, start.UID, detectors)
	if err != nil {
		return r.finish(ctx, err)
	}
	re.emit(wire.KindDescriptor, desc)

	for seq := 1; seq <= num; seq++ {
		if err := ctx.Err(); err != nil {
			return r.finish(ctx, err)
		}

		reading, err := readAll(ctx, detectors)
		if err != nil {
			return r.finish(ctx, err)
		}

		data, timestamps := reading.Split()
		re.emit(wire.KindEvent, &wire.Event{
			UID:        re.newUID(),
			Descriptor: desc.UID,
			SeqNum:     seq,
			Time:       re.now(),
			Data:       data,
			Timestamps: timestamps,
		})
		r.events++

		if delay > 0 && seq < num {
			timer := time.NewTimer(delay)
			select {
			case <-ctx.Done():
				timer.Stop()
				return r.finish(ctx, ctx.Err())
			case <-timer.C:
			}
		}
	}

	return r.finish(ctx, nil)
}

// run tracks one plan execution.
type run struct {
	engine *RunEngine
	start  *wire.RunStart
	events int
}

// finish emits the RunStop. A nil err means success.
func (r *run) finish(ctx context.Context, err error) (string, error) {
	status := wire.ExitSuccess
	reason := ""
	switch {
	case err == nil:
	case ctx.Err() != nil:
		status = wire.ExitAbort
		err = fmt.Errorf("%w: %w", ErrAborted, err)
		reason = err.Error()
	default:
		status = wire.ExitFail
		reason = err.Error()
	}

	re := r.engine
	re.emit(wire.KindStop, &wire.RunStop{
		UID:        re.newUID(),
		RunStart:   r.start.UID,
		Time:       re.now(),
		ExitStatus: status,
		Reason:     reason,
		NumEvents:  map[string]int{PrimaryStream: r.events},
	})

	if err != nil {
		re.logger.Warn("run ended", "uid", r.start.UID, "exit_status", status, "events", r.events, "error", err)
	} else {
		re.logger.Info("run ended", "uid", r.start.UID, "exit_status", status, "events", r.events)
	}
	return r.start.UID, err
}

// describe builds the primary descriptor from every detector.
func (re *RunEngine) describe(ctx context.Context, runUID string, detectors []acquire.Readable) (*wire.EventDescriptor, error) {
	desc := &wire.EventDescriptor{
		UID:           re.newUID(),
		RunStart:      runUID,
		Time:          re.now(),
		Name:          PrimaryStream,
		DataKeys:      acquire.Description{},
		Configuration: make(map[string]wire.Configuration, len(detectors)),
		ObjectKeys:    make(map[string][]string, len(detectors)),
	}

	for _, det := range detectors {
		name := det.Name()

		d, err := det.Describe(ctx)
		if err != nil {
			return nil, fmt.Errorf("describe %s: %w", name, err)
		}
		for key, dk := range d {
			if prev, exists := desc.DataKeys[key]; exists {
				return nil, fmt.Errorf("%w: %s from %s and %s", ErrDuplicateKey, key, prev.ObjectName, name)
			}
			dk.ObjectName = name
			desc.DataKeys[key] = dk
		}
		desc.ObjectKeys[name] = d.Keys()

		cfg, err := det.ReadConfiguration(ctx)
		if err != nil {
			return nil, fmt.Errorf("read configuration %s: %w", name, err)
		}
		cfgDesc, err := det.DescribeConfiguration(ctx)
		if err != nil {
			return nil, fmt.Errorf("describe configuration %s: %w", name, err)
		}
		data, timestamps := cfg.Split()
		desc.Configuration[name] = wire.Configuration{Data: data, Timestamps: timestamps, DataKeys: cfgDesc}

		if h, ok := det.(hinter); ok {
			if fields := h.Hints(); len(fields) > 0 {
				if desc.Hints == nil {
					desc.Hints = make(map[string]wire.Hint)
				}
				desc.Hints[name] = wire.Hint{Fields: fields}
			}
		}
	}

	return desc, nil
}

func readAll(ctx context.Context, detectors []acquire.Readable) (acquire.Reading, error) {
	reading := acquire.Reading{}
	for _, det := range detectors {
		r, err := det.Read(ctx)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", det.Name(), err)
		}
		reading.Merge(r)
	}
	return reading, nil
}

// IsAborted reports whether err ended a run with exit status "abort".
func IsAborted(err error) bool {
	return errors.Is(err, ErrAborted)
}
