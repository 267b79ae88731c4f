package rest

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/rondaflow-backend/internal/domain"
	"github.com/heartmarshall/rondaflow-backend/internal/gps"
	"github.com/heartmarshall/rondaflow-backend/internal/service/round"
	"sync"
)

var _ roundService = &roundServiceMock{}

type roundServiceMock struct {
	StartOrContinueFunc  func(ctx context.Context) (*domain.Round, error)
	CreateForAnalystFunc func(ctx context.Context, input round.CreateForAnalystInput) (*domain.Round, error)
	GetFunc              func(ctx context.Context, roundID uuid.UUID) (*round.Detail, error)
	ListFunc             func(ctx context.Context, input round.ListInput) ([]domain.Round, error)
	SetGeneralNoteFunc   func(ctx context.Context, input round.SetGeneralNoteInput) (*domain.Round, error)
	AnswerItemFunc       func(ctx context.Context, input round.AnswerItemInput) (*domain.Round, error)
	AttachPhotoFunc      func(ctx context.Context, input round.AttachPhotoInput) (*domain.Photo, error)
	PhotoContentFunc     func(ctx context.Context, roundID uuid.UUID, photoID uuid.UUID) ([]byte, string, error)
	RecordLocationFunc   func(ctx context.Context, input round.RecordLocationInput) (*domain.LocationPing, error)
	RouteFunc            func(ctx context.Context, roundID uuid.UUID) (gps.Route, error)
	FinalizeFunc         func(ctx context.Context, roundID uuid.UUID) (*domain.Round, error)

	calls struct {
		StartOrContinue []struct {
			Ctx context.Context
		}
		CreateForAnalyst []struct {
			Ctx   context.Context
			Input round.CreateForAnalystInput
		}
		Get []struct {
			Ctx     context.Context
			RoundID uuid.UUID
		}
		List []struct {
			Ctx   context.Context
			Input round.ListInput
		}
		SetGeneralNote []struct {
			Ctx   context.Context
			Input round.SetGeneralNoteInput
		}
		AnswerItem []struct {
			Ctx   context.Context
			Input round.AnswerItemInput
		}
		AttachPhoto []struct {
			Ctx   context.Context
			Input round.AttachPhotoInput
		}
		PhotoContent []struct {
			Ctx     context.Context
			RoundID uuid.UUID
			PhotoID uuid.UUID
		}
		RecordLocation []struct {
			Ctx   context.Context
			Input round.RecordLocationInput
		}
		Route []struct {
			Ctx     context.Context
			RoundID uuid.UUID
		}
		Finalize []struct {
			Ctx     context.Context
			RoundID uuid.UUID
		}
	}
	lockStartOrContinue  sync.RWMutex
	lockCreateForAnalyst sync.RWMutex
	lockGet              sync.RWMutex
	lockList             sync.RWMutex
	lockSetGeneralNote   sync.RWMutex
	lockAnswerItem       sync.RWMutex
	lockAttachPhoto      sync.RWMutex
	lockPhotoContent     sync.RWMutex
	lockRecordLocation   sync.RWMutex
	lockRoute            sync.RWMutex
	lockFinalize         sync.RWMutex
}

func (mock *roundServiceMock) StartOrContinue(ctx context.Context) (*domain.Round, error) {
	if mock.StartOrContinueFunc == nil {
		panic("roundServiceMock.StartOrContinueFunc: method is nil but roundService.StartOrContinue was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockStartOrContinue.Lock()
	mock.calls.StartOrContinue = append(mock.calls.StartOrContinue, callInfo)
	mock.lockStartOrContinue.Unlock()
	return mock.StartOrContinueFunc(ctx)
}

func (mock *roundServiceMock) StartOrContinueCalls() []struct {
	Ctx context.Context
} {
	mock.lockStartOrContinue.RLock()
	calls := mock.calls.StartOrContinue
	mock.lockStartOrContinue.RUnlock()
	return calls
}

func (mock *roundServiceMock) CreateForAnalyst(ctx context.Context, input round.CreateForAnalystInput) (*domain.Round, error) {
	if mock.CreateForAnalystFunc == nil {
		panic("roundServiceMock.CreateForAnalystFunc: method is nil but roundService.CreateForAnalyst was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input round.CreateForAnalystInput
	}{Ctx: ctx, Input: input}
	mock.lockCreateForAnalyst.Lock()
	mock.calls.CreateForAnalyst = append(mock.calls.CreateForAnalyst, callInfo)
	mock.lockCreateForAnalyst.Unlock()
	return mock.CreateForAnalystFunc(ctx, input)
}

func (mock *roundServiceMock) CreateForAnalystCalls() []struct {
	Ctx   context.Context
	Input round.CreateForAnalystInput
} {
	mock.lockCreateForAnalyst.RLock()
	calls := mock.calls.CreateForAnalyst
	mock.lockCreateForAnalyst.RUnlock()
	return calls
}

func (mock *roundServiceMock) Get(ctx context.Context, roundID uuid.UUID) (*round.Detail, error) {
	if mock.GetFunc == nil {
		panic("roundServiceMock.GetFunc: method is nil but roundService.Get was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		RoundID uuid.UUID
	}{Ctx: ctx, RoundID: roundID}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, roundID)
}

func (mock *roundServiceMock) GetCalls() []struct {
	Ctx     context.Context
	RoundID uuid.UUID
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *roundServiceMock) List(ctx context.Context, input round.ListInput) ([]domain.Round, error) {
	if mock.ListFunc == nil {
		panic("roundServiceMock.ListFunc: method is nil but roundService.List was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input round.ListInput
	}{Ctx: ctx, Input: input}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, input)
}

func (mock *roundServiceMock) ListCalls() []struct {
	Ctx   context.Context
	Input round.ListInput
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *roundServiceMock) SetGeneralNote(ctx context.Context, input round.SetGeneralNoteInput) (*domain.Round, error) {
	if mock.SetGeneralNoteFunc == nil {
		panic("roundServiceMock.SetGeneralNoteFunc: method is nil but roundService.SetGeneralNote was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input round.SetGeneralNoteInput
	}{Ctx: ctx, Input: input}
	mock.lockSetGeneralNote.Lock()
	mock.calls.SetGeneralNote = append(mock.calls.SetGeneralNote, callInfo)
	mock.lockSetGeneralNote.Unlock()
	return mock.SetGeneralNoteFunc(ctx, input)
}

func (mock *roundServiceMock) SetGeneralNoteCalls() []struct {
	Ctx   context.Context
	Input round.SetGeneralNoteInput
} {
	mock.lockSetGeneralNote.RLock()
	calls := mock.calls.SetGeneralNote
	mock.lockSetGeneralNote.RUnlock()
	return calls
}

func (mock *roundServiceMock) AnswerItem(ctx context.Context, input round.AnswerItemInput) (*domain.Round, error) {
	if mock.AnswerItemFunc == nil {
		panic("roundServiceMock.AnswerItemFunc: method is nil but roundService.AnswerItem was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input round.AnswerItemInput
	}{Ctx: ctx, Input: input}
	mock.lockAnswerItem.Lock()
	mock.calls.AnswerItem = append(mock.calls.AnswerItem, callInfo)
	mock.lockAnswerItem.Unlock()
	return mock.AnswerItemFunc(ctx, input)
}

func (mock *roundServiceMock) AnswerItemCalls() []struct {
	Ctx   context.Context
	Input round.AnswerItemInput
} {
	mock.lockAnswerItem.RLock()
	calls := mock.calls.AnswerItem
	mock.lockAnswerItem.RUnlock()
	return calls
}

func (mock *roundServiceMock) AttachPhoto(ctx context.Context, input round.AttachPhotoInput) (*domain.Photo, error) {
	if mock.AttachPhotoFunc == nil {
		panic("roundServiceMock.AttachPhotoFunc: method is nil but roundService.AttachPhoto was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input round.AttachPhotoInput
	}{Ctx: ctx, Input: input}
	mock.lockAttachPhoto.Lock()
	mock.calls.AttachPhoto = append(mock.calls.AttachPhoto, callInfo)
	mock.lockAttachPhoto.Unlock()
	return mock.AttachPhotoFunc(ctx, input)
}

func (mock *roundServiceMock) AttachPhotoCalls() []struct {
	Ctx   context.Context
	Input round.AttachPhotoInput
} {
	mock.lockAttachPhoto.RLock()
	calls := mock.calls.AttachPhoto
	mock.lockAttachPhoto.RUnlock()
	return calls
}

func (mock *roundServiceMock) PhotoContent(ctx context.Context, roundID uuid.UUID, photoID uuid.UUID) ([]byte, string, error) {
	if mock.PhotoContentFunc == nil {
		panic("roundServiceMock.PhotoContentFunc: method is nil but roundService.PhotoContent was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		RoundID uuid.UUID
		PhotoID uuid.UUID
	}{Ctx: ctx, RoundID: roundID, PhotoID: photoID}
	mock.lockPhotoContent.Lock()
	mock.calls.PhotoContent = append(mock.calls.PhotoContent, callInfo)
	mock.lockPhotoContent.Unlock()
	return mock.PhotoContentFunc(ctx, roundID, photoID)
}

func (mock *roundServiceMock) PhotoContentCalls() []struct {
	Ctx     context.Context
	RoundID uuid.UUID
	PhotoID uuid.UUID
} {
	mock.lockPhotoContent.RLock()
	calls := mock.calls.PhotoContent
	mock.lockPhotoContent.RUnlock()
	return calls
}

func (mock *roundServiceMock) RecordLocation(ctx context.Context, input round.RecordLocationInput) (*domain.LocationPing, error) {
	if mock.RecordLocationFunc == nil {
		panic("roundServiceMock.RecordLocationFunc: method is nil but roundService.RecordLocation was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input round.RecordLocationInput
	}{Ctx: ctx, Input: input}
	mock.lockRecordLocation.Lock()
	mock.calls.RecordLocation = append(mock.calls.RecordLocation, callInfo)
	mock.lockRecordLocation.Unlock()
	return mock.RecordLocationFunc(ctx, input)
}

func (mock *roundServiceMock) RecordLocationCalls() []struct {
	Ctx   context.Context
	Input round.RecordLocationInput
} {
	mock.lockRecordLocation.RLock()
	calls := mock.calls.RecordLocation
	mock.lockRecordLocation.RUnlock()
	return calls
}

func (mock *roundServiceMock) Route(ctx context.Context, roundID uuid.UUID) (gps.Route, error) {
	if mock.RouteFunc == nil {
		panic("roundServiceMock.RouteFunc: method is nil but roundService.Route was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		RoundID uuid.UUID
	}{Ctx: ctx, RoundID: roundID}
	mock.lockRoute.Lock()
	mock.calls.Route = append(mock.calls.Route, callInfo)
	mock.lockRoute.Unlock()
	return mock.RouteFunc(ctx, roundID)
}

func (mock *roundServiceMock) RouteCalls() []struct {
	Ctx     context.Context
	RoundID uuid.UUID
} {
	mock.lockRoute.RLock()
	calls := mock.calls.Route
	mock.lockRoute.RUnlock()
	return calls
}

func (mock *roundServiceMock) Finalize(ctx context.Context, roundID uuid.UUID) (*domain.Round, error) {
	if mock.FinalizeFunc == nil {
		panic("roundServiceMock.FinalizeFunc: method is nil but roundService.Finalize was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		RoundID uuid.UUID
	}{Ctx: ctx, RoundID: roundID}
	mock.lockFinalize.Lock()
	mock.calls.Finalize = append(mock.calls.Finalize, callInfo)
	mock.lockFinalize.Unlock()
	return mock.FinalizeFunc(ctx, roundID)
}

func (mock *roundServiceMock) FinalizeCalls() []struct {
	Ctx     context.Context
	RoundID uuid.UUID
} {
	mock.lockFinalize.RLock()
	calls := mock.calls.Finalize
	mock.lockFinalize.RUnlock()
	return calls
}
