package model

import "testing"

func TestParseDataURL(t *testing.T) {
	tests := []struct {
		name        string
		dataURL     string
		wantMime    string
		wantPayload string
		wantErr     bool
	}{
		{
			name:        "valid png data URL",
			dataURL:     "data:image/png;base64,iVBORw0KGgo=",
			wantMime:    "image/png",
			wantPayload: "iVBORw0KGgo=",
		},
		{
			name:        "valid pdf data URL",
			dataURL:     "data:application/pdf;base64,JVBERi0x",
			wantMime:    "application/pdf",
			wantPayload: "JVBERi0x",
		},
		{
			name:    "plain URL",
			dataURL: "https://example.com/a.png",
			wantErr: true,
		},
		{
			name:    "missing base64 marker",
			dataURL: "data:image/png,iVBORw0KGgo=",
			wantErr: true,
		},
		{
			name:    "payload with invalid characters",
			dataURL: "data:image/png;base64,iVBOR w0KGgo",
			wantErr: true,
		},
		{
			name:    "empty string",
			dataURL: "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mimeType, payload, err := ParseDataURL(tt.dataURL)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseDataURL(%q) expected error, got mime=%q", tt.dataURL, mimeType)
				}
				if !IsBadRequest(err) {
					t.Fatalf("ParseDataURL(%q) error should be a bad request error", tt.dataURL)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDataURL(%q) unexpected error: %v", tt.dataURL, err)
			}
			if mimeType != tt.wantMime {
				t.Errorf("mime = %q, want %q", mimeType, tt.wantMime)
			}
			if payload != tt.wantPayload {
				t.Errorf("payload = %q, want %q", payload, tt.wantPayload)
			}
		})
	}
}
