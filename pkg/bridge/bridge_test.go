package bridge

import (
	"errors"
	"testing"
)

func TestJsonCodecRoundTrip(t *testing.T) {
	codec := JsonCodec{}

	data, err := codec.Encode(map[string]any{"uri": "file:///a.jpg", "width": 100})
	if err != nil {
		t.Fatal(err)
	}
	decoded, err := codec.Decode(data)
	if err != nil {
		t.Fatal(err)
	}
	m, ok := decoded.(map[string]any)
	if !ok {
		t.Fatalf("decoded is %T, want map", decoded)
	}
	if m["uri"] != "file:///a.jpg" {
		t.Errorf("uri = %v", m["uri"])
	}
	// JSON numbers decode as float64.
	if m["width"] != float64(100) {
		t.Errorf("width = %v (%T)", m["width"], m["width"])
	}
}

func TestJsonCodecEmptyAndNull(t *testing.T) {
	codec := JsonCodec{}

	v, err := codec.Decode(nil)
	if err != nil || v != nil {
		t.Errorf("Decode(nil) = %v, %v", v, err)
	}
	v, err = codec.Decode([]byte("null"))
	if err != nil || v != nil {
		t.Errorf("Decode(null) = %v, %v", v, err)
	}
	if _, err := codec.Decode([]byte("{broken")); err == nil {
		t.Error("expected error for malformed input")
	}
}

func TestJsonCodecDecodeInto(t *testing.T) {
	codec := JsonCodec{}

	var out struct {
		Status string `json:"status"`
	}
	if err := codec.DecodeInto([]byte(`{"status":"granted"}`), &out); err != nil {
		t.Fatal(err)
	}
	if out.Status != "granted" {
		t.Errorf("status = %q", out.Status)
	}
}

func TestInvokeWithoutBridge(t *testing.T) {
	ResetForTest()
	t.Cleanup(ResetForTest)

	ch := NewMethodChannel("test/no-bridge")
	if _, err := ch.Invoke("ping", nil); !errors.Is(err, ErrPlatformUnavailable) {
		t.Errorf("err = %v, want ErrPlatformUnavailable", err)
	}
}

func TestScriptedBridgeRecordsCalls(t *testing.T) {
	sb := NewScriptedBridge()
	SetNativeBridge(sb)
	t.Cleanup(ResetForTest)

	sb.Handle("test/echo", func(method string, args any) (any, error) {
		return args, nil
	})

	ch := NewMethodChannel("test/echo")
	result, err := ch.Invoke("echo", map[string]any{"k": "v"})
	if err != nil {
		t.Fatal(err)
	}
	m, ok := result.(map[string]any)
	if !ok || m["k"] != "v" {
		t.Errorf("result = %v", result)
	}

	calls := sb.Calls()
	if len(calls) != 1 {
		t.Fatalf("len(calls) = %d, want 1", len(calls))
	}
	if calls[0].Channel != "test/echo" || calls[0].Method != "echo" {
		t.Errorf("call = %+v", calls[0])
	}
	if sb.CallCount("test/echo", "echo") != 1 {
		t.Error("CallCount mismatch")
	}
}

func TestScriptedBridgeUnhandledChannel(t *testing.T) {
	sb := NewScriptedBridge()
	SetNativeBridge(sb)
	t.Cleanup(ResetForTest)

	ch := NewMethodChannel("test/unhandled")
	result, err := ch.Invoke("anything", nil)
	if err != nil {
		t.Fatal(err)
	}
	if result != nil {
		t.Errorf("result = %v, want nil", result)
	}
}

func TestEventChannelDispatch(t *testing.T) {
	sb := NewScriptedBridge()
	SetNativeBridge(sb)
	t.Cleanup(ResetForTest)

	ch := NewEventChannel("test/events")

	var received []any
	sub := ch.Listen(EventHandler{
		OnEvent: func(data any) { received = append(received, data) },
	})
	defer sub.Cancel()

	if err := sb.Emit("test/events", map[string]any{"n": 1}); err != nil {
		t.Fatal(err)
	}
	if err := sb.Emit("test/events", map[string]any{"n": 2}); err != nil {
		t.Fatal(err)
	}
	if len(received) != 2 {
		t.Fatalf("received %d events, want 2", len(received))
	}
}

func TestSubscriptionCancelStopsDelivery(t *testing.T) {
	sb := NewScriptedBridge()
	SetNativeBridge(sb)
	t.Cleanup(ResetForTest)

	ch := NewEventChannel("test/cancel")

	events := 0
	sub := ch.Listen(EventHandler{
		OnEvent: func(any) { events++ },
	})

	_ = sb.Emit("test/cancel", "first")
	sub.Cancel()
	if !sub.IsCanceled() {
		t.Error("expected canceled subscription")
	}

	// With no listeners the event is still accepted, just not delivered.
	_ = sb.Emit("test/cancel", "second")
	if events != 1 {
		t.Errorf("events = %d, want 1", events)
	}
}

func TestEmitUnregisteredChannel(t *testing.T) {
	sb := NewScriptedBridge()
	SetNativeBridge(sb)
	t.Cleanup(ResetForTest)

	if err := sb.Emit("test/nobody-home", "x"); !errors.Is(err, ErrChannelNotRegistered) {
		t.Errorf("err = %v, want ErrChannelNotRegistered", err)
	}
}

func TestHandleMethodCall(t *testing.T) {
	ResetForTest()
	t.Cleanup(ResetForTest)

	ch := NewMethodChannel("test/incoming")
	ch.SetHandler(func(method string, args any) (any, error) {
		if method != "describe" {
			return nil, ErrMethodNotFound
		}
		return map[string]any{"ok": true}, nil
	})

	args, _ := DefaultCodec.Encode(map[string]any{"id": "a"})
	resultData, err := HandleMethodCall("test/incoming", "describe", args)
	if err != nil {
		t.Fatal(err)
	}
	result, err := DefaultCodec.Decode(resultData)
	if err != nil {
		t.Fatal(err)
	}
	if m, ok := result.(map[string]any); !ok || m["ok"] != true {
		t.Errorf("result = %v", result)
	}

	if _, err := HandleMethodCall("test/missing", "describe", nil); !errors.Is(err, ErrChannelNotFound) {
		t.Errorf("err = %v, want ErrChannelNotFound", err)
	}
	if _, err := HandleMethodCall("test/incoming", "unknown", nil); !errors.Is(err, ErrMethodNotFound) {
		t.Errorf("err = %v, want ErrMethodNotFound", err)
	}
}

func TestHandleEventErrorAndDone(t *testing.T) {
	sb := NewScriptedBridge()
	SetNativeBridge(sb)
	t.Cleanup(ResetForTest)

	ch := NewEventChannel("test/lifecycle")

	var gotErr error
	done := false
	sub := ch.Listen(EventHandler{
		OnError: func(err error) { gotErr = err },
		OnDone:  func() { done = true },
	})

	if err := HandleEventError("test/lifecycle", "E1", "stream broke"); err != nil {
		t.Fatal(err)
	}
	var chErr *ChannelError
	if !errors.As(gotErr, &chErr) || chErr.Code != "E1" {
		t.Errorf("gotErr = %v", gotErr)
	}

	if err := HandleEventDone("test/lifecycle"); err != nil {
		t.Fatal(err)
	}
	if !done {
		t.Error("expected OnDone")
	}
	if !sub.IsCanceled() {
		t.Error("done should cancel subscriptions")
	}
}

func TestChannelErrorMessage(t *testing.T) {
	e := NewChannelError("PERMISSION_DENIED", "user said no")
	if e.Error() != "PERMISSION_DENIED: user said no" {
		t.Errorf("Error() = %q", e.Error())
	}
	bare := NewChannelError("UNKNOWN", "")
	if bare.Error() != "UNKNOWN" {
		t.Errorf("Error() = %q", bare.Error())
	}
}

func TestSetNativeBridgeConcurrentWithUse(t *testing.T) {
	ResetForTest()
	t.Cleanup(ResetForTest)

	method := NewMethodChannel("test/concurrent")
	events := NewEventChannel("test/concurrent/events")

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 100; i++ {
			SetNativeBridge(NewScriptedBridge())
		}
	}()

	for i := 0; i < 100; i++ {
		// Either outcome is fine; installation must not race with use.
		_, _ = method.Invoke("ping", nil)
		sub := events.Listen(EventHandler{})
		sub.Cancel()
	}
	<-done
}

func TestConvertHelpers(t *testing.T) {
	if got := String("a"); got != "a" {
		t.Errorf("String = %q", got)
	}
	if got := String(42); got != "" {
		t.Errorf("String(int) = %q, want empty", got)
	}
	if !Bool(true) || Bool("yes") {
		t.Error("Bool conversions wrong")
	}
	if got := Int(float64(7)); got != 7 {
		t.Errorf("Int(float64) = %d", got)
	}
	if got := Int64(float64(1 << 33)); got != 1<<33 {
		t.Errorf("Int64 = %d", got)
	}
	if got := Float64(float64(1.5)); got != 1.5 {
		t.Errorf("Float64 = %v", got)
	}
	if got := Map(map[string]any{"k": 1}); got == nil {
		t.Error("Map returned nil for a map")
	}
	if got := Map("not a map"); got != nil {
		t.Error("Map should return nil for non-maps")
	}
}
