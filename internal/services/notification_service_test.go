package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rafabene/academia-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/academia-backend/internal/domain/errors"
	"github.com/rafabene/academia-backend/internal/domain/repositories"
	"github.com/rafabene/academia-backend/internal/domain/valueobjects"
)

func TestNotificationService(t *testing.T) {
	ctx := context.Background()
	users := newFakeUserRepo()
	repo := newFakeNotificationRepo()
	publisher := &recordingPublisher{err: errors.New("no subscribers")}
	svc := NewNotificationService(repo, users, publisher, testLogger())

	email, _ := valueobjects.NewEmail("dono@academia.com")
	owner := &entities.User{Email: email, Name: "Dono", Role: entities.RoleStudent, Status: entities.UserStatusActive}
	_ = users.Create(ctx, owner)
	stranger := &entities.User{ID: 99, Role: entities.RoleStudent}
	admin := &entities.User{ID: 100, Role: entities.RoleAdmin}

	n, err := svc.CreateNotification(ctx, CreateNotificationInput{UserID: owner.ID, Title: "Bem-vindo"})
	if err != nil {
		t.Fatalf("esperava notificação criada mesmo com falha de publicação, obteve %v", err)
	}
	if n.Type != entities.NotificationSystem {
		t.Errorf("esperava tipo system por padrão, obteve %s", n.Type)
	}
	if len(publisher.published) != 1 {
		t.Errorf("esperava 1 publicação, obteve %d", len(publisher.published))
	}

	t.Run("destinatário inexistente", func(t *testing.T) {
		_, err := svc.CreateNotification(ctx, CreateNotificationInput{UserID: 12345, Title: "x"})
		if !errors.Is(err, domainerrors.ErrUserNotFound) {
			t.Errorf("esperava ErrUserNotFound, obteve %v", err)
		}
	})

	t.Run("tipo inválido", func(t *testing.T) {
		_, err := svc.CreateNotification(ctx, CreateNotificationInput{UserID: owner.ID, Type: "promo", Title: "x"})
		var de *domainerrors.DomainError
		if !errors.As(err, &de) || de.Type != domainerrors.ProblemTypeValidation {
			t.Errorf("esperava erro de validação, obteve %v", err)
		}
	})

	t.Run("outro usuário não marca como lida", func(t *testing.T) {
		if _, err := svc.MarkAsRead(ctx, n.ID, stranger); !errors.Is(err, domainerrors.ErrNotificationNotFound) {
			t.Errorf("esperava ErrNotificationNotFound, obteve %v", err)
		}
	})

	t.Run("dono marca como lida", func(t *testing.T) {
		read, err := svc.MarkAsRead(ctx, n.ID, owner)
		if err != nil || !read.Read {
			t.Fatalf("esperava notificação lida, obteve %v", err)
		}
		unread, _ := svc.CountUnread(ctx, owner.ID)
		if unread != 0 {
			t.Errorf("esperava 0 não lidas, obteve %d", unread)
		}
		list, _ := svc.ListForUser(ctx, owner.ID, true, repositories.Pagination{})
		if len(list) != 0 {
			t.Errorf("esperava lista de não lidas vazia, obteve %d", len(list))
		}
	})

	t.Run("admin remove notificação de outro usuário", func(t *testing.T) {
		if err := svc.DeleteNotification(ctx, n.ID, admin); err != nil {
			t.Fatalf("esperava remoção, obteve %v", err)
		}
		if _, ok := repo.items[n.ID]; ok {
			t.Error("esperava notificação removida")
		}
	})
}
