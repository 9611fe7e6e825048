package in

import (
	"context"

	topicdto "konkrete/internal/modules/topic/dto"
	topicin "konkrete/internal/modules/topic/port/in"
)

type CLIHandler struct {
	usecase topicin.Usecase
}

func NewCLIHandler(usecase topicin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Add(ctx context.Context, name, icon string) (topicdto.TopicOutput, error) {
	return h.usecase.Add(ctx, topicdto.AddInput{Name: name, Icon: icon})
}

func (h CLIHandler) Update(ctx context.Context, id, name, icon, color string) (topicdto.TopicOutput, error) {
	return h.usecase.Update(ctx, topicdto.UpdateInput{ID: id, Name: name, Icon: icon, Color: color})
}

func (h CLIHandler) AddManualMinutes(ctx context.Context, id string, minutes float64) error {
	return h.usecase.AddManualMinutes(ctx, id, minutes)
}

func (h CLIHandler) Delete(ctx context.Context, id string) error {
	return h.usecase.Delete(ctx, id)
}

func (h CLIHandler) List(ctx context.Context) ([]topicdto.TopicOutput, error) {
	return h.usecase.List(ctx)
}

func (h CLIHandler) Get(ctx context.Context, id string) (topicdto.TopicOutput, error) {
	return h.usecase.Get(ctx, id)
}
