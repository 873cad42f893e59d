// Package mocks provides test doubles for the earthengine client.
package mocks

import (
	"context"

	earthengine "github.com/brngo13/gee-tiles/pkg/earthengine"
	mock "github.com/stretchr/testify/mock"
)

// MockClient is a mock type for the Client interface.
type MockClient struct {
	mock.Mock
}

// GetAsset provides a mock function with given fields: ctx, assetID
func (_m *MockClient) GetAsset(ctx context.Context, assetID string) (*earthengine.Asset, error) {
	ret := _m.Called(ctx, assetID)

	if len(ret) == 0 {
		panic("no return value specified for GetAsset")
	}

	var r0 *earthengine.Asset
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string) (*earthengine.Asset, error)); ok {
		return rf(ctx, assetID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string) *earthengine.Asset); ok {
		r0 = rf(ctx, assetID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*earthengine.Asset)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, assetID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// CreateTableMap provides a mock function with given fields: ctx, req
func (_m *MockClient) CreateTableMap(ctx context.Context, req earthengine.TableMapRequest) (*earthengine.MapDescriptor, error) {
	ret := _m.Called(ctx, req)

	if len(ret) == 0 {
		panic("no return value specified for CreateTableMap")
	}

	var r0 *earthengine.MapDescriptor
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, earthengine.TableMapRequest) (*earthengine.MapDescriptor, error)); ok {
		return rf(ctx, req)
	}
	if rf, ok := ret.Get(0).(func(context.Context, earthengine.TableMapRequest) *earthengine.MapDescriptor); ok {
		r0 = rf(ctx, req)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*earthengine.MapDescriptor)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, earthengine.TableMapRequest) error); ok {
		r1 = rf(ctx, req)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}
