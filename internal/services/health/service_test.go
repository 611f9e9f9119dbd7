package health

import "testing"

func TestStatusReportsCredential(t *testing.T) {
	key := ""
	svc := NewService(func() string { return key })

	if st := svc.Status(); !st.OK || st.APIKeyConfigured {
		t.Fatalf("unexpected status without key: %+v", st)
	}

	key = "abc"
	if st := svc.Status(); !st.APIKeyConfigured {
		t.Fatalf("expected key to be reported, got %+v", st)
	}
}

func TestStatusWithoutKeyFunc(t *testing.T) {
	st := NewService(nil).Status()
	if !st.OK || st.APIKeyConfigured {
		t.Fatalf("unexpected status %+v", st)
	}
}
