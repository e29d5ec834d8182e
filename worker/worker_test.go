package worker

import (
	"bytes"
	"mandelbrot/mandelbrot"
	"mandelbrot/misc"
	"mandelbrot/task"
	"sync"
	"testing"
)

func newTestWorker(t *testing.T) *Worker {
	t.Helper()
	worker, err := NewWorker(Settings{ServerAddress: "127.0.0.1:0"})
	if err != nil {
		t.Fatalf("NewWorker returned an error: %v", err)
	}
	return worker
}

func TestRenderBand(t *testing.T) {
	worker := newTestWorker(t)
	request := task.BandRequest{
		Band:          task.Band{ID: 2, Top: 8, Height: 4, Width: 16},
		UpperLeft:     complex(-2, 0.5),
		LowerRight:    complex(1, 0),
		MaxIterations: 225,
	}

	var reply task.BandReply
	if err := worker.RenderBand(request, &reply); err != nil {
		t.Fatalf("RenderBand returned an error: %v", err)
	}
	if reply.BandID != 2 || reply.Size != 64 {
		t.Errorf("reply = {BandID: %d, Size: %d}, want {2, 64}", reply.BandID, reply.Size)
	}

	got := make([]byte, reply.Size)
	if err := misc.DecompressInto(got, reply.Compressed); err != nil {
		t.Fatalf("DecompressInto returned an error: %v", err)
	}
	want := make([]byte, 64)
	mandelbrot.RenderBand(want, mandelbrot.Bounds{Width: 16, Height: 4}, request.UpperLeft, request.LowerRight, 225)
	if !bytes.Equal(got, want) {
		t.Error("worker pixels differ from a local band render")
	}
	if worker.bandsRendered.Load() != 1 {
		t.Errorf("bandsRendered = %d, want 1", worker.bandsRendered.Load())
	}
}

func TestRenderBandConcurrentDuplicates(t *testing.T) {
	worker := newTestWorker(t)
	request := task.BandRequest{
		Band:          task.Band{Height: 32, Width: 32},
		UpperLeft:     complex(-2, 2),
		LowerRight:    complex(2, -2),
		MaxIterations: 225,
	}

	var wg sync.WaitGroup
	replies := make([]task.BandReply, 8)
	errs := make([]error, 8)
	for i := range replies {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs[i] = worker.RenderBand(request, &replies[i])
		}()
	}
	wg.Wait()

	for i := range replies {
		if errs[i] != nil {
			t.Fatalf("request %d returned an error: %v", i, errs[i])
		}
		if !bytes.Equal(replies[i].Compressed, replies[0].Compressed) {
			t.Errorf("request %d got different pixels", i)
		}
	}
}

func TestRenderBandEmpty(t *testing.T) {
	worker := newTestWorker(t)
	var reply task.BandReply
	request := task.BandRequest{Band: task.Band{Width: 16}, UpperLeft: complex(-1, 1), LowerRight: complex(1, -1), MaxIterations: 10}
	if err := worker.RenderBand(request, &reply); err != nil {
		t.Fatalf("RenderBand returned an error: %v", err)
	}
	if reply.Size != 0 {
		t.Errorf("Size = %d, want 0", reply.Size)
	}
}

func TestRenderBandInvalid(t *testing.T) {
	worker := newTestWorker(t)
	var reply task.BandReply

	tests := []task.BandRequest{
		{Band: task.Band{Height: -1, Width: 4}, MaxIterations: 10},
		{Band: task.Band{Height: 1, Width: -4}, MaxIterations: 10},
		{Band: task.Band{Height: 1, Width: 4}},
	}
	for _, request := range tests {
		if err := worker.RenderBand(request, &reply); err == nil {
			t.Errorf("expected an error for %s", request.String())
		}
	}
}

func TestRollCall(t *testing.T) {
	worker := newTestWorker(t)
	var present bool
	if err := worker.RollCall(true, &present); err != nil || !present {
		t.Errorf("RollCall = %t, %v", present, err)
	}
}

func TestSettingsVerify(t *testing.T) {
	s := Settings{}
	if err := s.Verify(); err != nil {
		t.Fatalf("Verify returned an error: %v", err)
	}
	if s.Transport != "tcp" || s.ServerAddress == "" || s.HeartBeat <= 0 {
		t.Errorf("defaults not applied: %s", s.String())
	}

	s = Settings{Transport: "carrier pigeon"}
	if err := s.Verify(); err == nil {
		t.Error("expected an error for an unknown transport")
	}
}

func TestRunAndStop(t *testing.T) {
	worker := newTestWorker(t)
	if err := worker.Run(); err != nil {
		t.Fatalf("Run returned an error: %v", err)
	}
	if worker.Address() == "127.0.0.1:0" {
		t.Error("expected the address to name the chosen port")
	}
	if err := worker.Stop(); err != nil {
		t.Errorf("Stop returned an error: %v", err)
	}
}
