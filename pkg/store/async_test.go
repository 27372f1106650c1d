package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aretw0/reducto/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatchAsync_ExecutesWorkflow(t *testing.T) {
	reached := 0
	st := New[[]string](newListReducer(&reached))

	future := DispatchAsync(context.Background(), st, func(ctx context.Context, dispatch DispatchFunc, getState GetStateFunc[[]string]) (int, error) {
		time.Sleep(10 * time.Millisecond)
		if getState()[0] != "seed" {
			return 0, errors.New("unexpected state")
		}
		dispatch(someAction{})
		return 112, nil
	})

	result, err := future.Await(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 112, result)
	assert.Equal(t, 1, reached)
}

func TestDispatchAsync_Interleaving(t *testing.T) {
	st := New[[]string](newListReducer(nil))
	resume := make(chan struct{})
	var seenAfterX []string

	future := DispatchAsync(context.Background(), st, Void(func(ctx context.Context, dispatch DispatchFunc, getState GetStateFunc[[]string]) error {
		dispatch(itemAdded{Item: "x"})
		seenAfterX = getState()
		select {
		case <-resume:
		case <-ctx.Done():
			return ctx.Err()
		}
		dispatch(itemAdded{Item: "y"})
		return nil
	}))

	close(resume)
	_, err := future.Await(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"seed", "x"}, seenAfterX)
	assert.Equal(t, []string{"seed", "x", "y"}, st.GetState())
}

func TestDispatchAsync_DispatchesGoThroughMiddleware(t *testing.T) {
	st := New[[]string](newListReducer(nil))
	var calls []string
	st.Middleware(recorder("A", &calls, true))

	future := DispatchAsync(context.Background(), st, Void(func(_ context.Context, dispatch DispatchFunc, _ GetStateFunc[[]string]) error {
		dispatch(itemAdded{Item: "a"})
		return nil
	}))
	<-future.Done()

	assert.Equal(t, []string{"A-before", "A-after"}, calls)
}

func TestAsyncActionOf_PassesParameters(t *testing.T) {
	reached := 0
	st := New[[]string](newListReducer(&reached))

	login := AsyncActionOf(func(ctx context.Context, dispatch DispatchFunc, getState GetStateFunc[[]string], msg loginInfo) (int, error) {
		if msg.Username != "John" {
			return 0, errors.New("wrong user")
		}
		dispatch(someAction{})
		return 112, nil
	})

	result, err := DispatchAsync(context.Background(), st, login(loginInfo{Username: "John"})).Await(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 112, result)
	assert.Equal(t, 1, reached)
}

func TestDispatchAsync_Errors(t *testing.T) {
	st := New[[]string](newListReducer(nil))

	t.Run("Workflow Error", func(t *testing.T) {
		wantErr := errors.New("login failed")
		_, err := DispatchAsync(context.Background(), st, func(context.Context, DispatchFunc, GetStateFunc[[]string]) (int, error) {
			return 0, wantErr
		}).Await(context.Background())
		assert.ErrorIs(t, err, wantErr)
	})

	t.Run("Panic", func(t *testing.T) {
		_, err := DispatchAsync(context.Background(), st, func(context.Context, DispatchFunc, GetStateFunc[[]string]) (int, error) {
			panic("boom")
		}).Await(context.Background())
		assert.ErrorIs(t, err, domain.ErrAsyncPanic)
		assert.Contains(t, err.Error(), "boom")
	})

	t.Run("Await Canceled", func(t *testing.T) {
		block := make(chan struct{})
		defer close(block)
		future := DispatchAsync(context.Background(), st, func(context.Context, DispatchFunc, GetStateFunc[[]string]) (int, error) {
			<-block
			return 1, nil
		})

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := future.Await(ctx)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
