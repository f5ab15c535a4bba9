package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"
)

type MockBlobStore struct {
	mock.Mock
}

func (m *MockBlobStore) Put(ctx context.Context, name string, r io.Reader, size int64) (string, error) {
	args := m.Called(ctx, name, r, size)
	if f, ok := args.Get(0).(func(context.Context, string, io.Reader, int64) string); ok {
		return f(ctx, name, r, size), args.Error(1)
	}
	return args.String(0), args.Error(1)
}

func (m *MockBlobStore) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	args := m.Called(ctx, path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(io.ReadCloser), args.Error(1)
}

func (m *MockBlobStore) Delete(ctx context.Context, path string) error {
	args := m.Called(ctx, path)
	return args.Error(0)
}
