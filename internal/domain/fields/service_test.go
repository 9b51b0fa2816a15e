package fields

import (
	"context"
	"errors"
	"regexp"
	"sort"
	"strings"
	"testing"

	"campo-app-go/internal/domain/access"
)

type fakeFieldsRepo struct {
	fields      map[string]*Field
	members     []access.Membership
	invitations map[string]*Invitation
	addErr      error
}

func newFakeFieldsRepo() *fakeFieldsRepo {
	return &fakeFieldsRepo{
		fields:      make(map[string]*Field),
		invitations: make(map[string]*Invitation),
	}
}

func (r *fakeFieldsRepo) Transaction(ctx context.Context, fn func(Repository) error) error {
	return fn(r)
}

func (r *fakeFieldsRepo) CreateField(ctx context.Context, field *Field) error {
	r.fields[field.ID] = field
	return nil
}

func (r *fakeFieldsRepo) ListFieldsByUser(ctx context.Context, userID string) ([]UserField, error) {
	var result []UserField
	for _, member := range r.members {
		if member.UserID != userID {
			continue
		}
		field := r.fields[member.FieldID]
		result = append(result, UserField{ID: field.ID, Name: field.Name, Role: member.Role})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (r *fakeFieldsRepo) AddMembership(ctx context.Context, member *access.Membership) error {
	if r.addErr != nil {
		return r.addErr
	}
	r.members = append(r.members, *member)
	return nil
}

func (r *fakeFieldsRepo) GetMembership(ctx context.Context, userID, fieldID string) (*access.Membership, error) {
	for i := range r.members {
		if r.members[i].UserID == userID && r.members[i].FieldID == fieldID {
			return &r.members[i], nil
		}
	}
	return nil, access.ErrMembershipNotFound
}

func (r *fakeFieldsRepo) ListMembers(ctx context.Context, fieldID string) ([]access.Membership, error) {
	var result []access.Membership
	for _, member := range r.members {
		if member.FieldID == fieldID {
			result = append(result, member)
		}
	}
	return result, nil
}

func (r *fakeFieldsRepo) CreateInvitation(ctx context.Context, invitation *Invitation) error {
	r.invitations[invitation.ID] = invitation
	return nil
}

func (r *fakeFieldsRepo) GetInvitationByCode(ctx context.Context, code string) (*Invitation, error) {
	for _, invitation := range r.invitations {
		if invitation.Code == code {
			return invitation, nil
		}
	}
	return nil, ErrInvitationNotFound
}

func (r *fakeFieldsRepo) DeleteInvitation(ctx context.Context, id string) (int64, error) {
	if _, ok := r.invitations[id]; !ok {
		return 0, nil
	}
	delete(r.invitations, id)
	return 1, nil
}

func (r *fakeFieldsRepo) membershipCount(userID, fieldID string) int {
	count := 0
	for _, member := range r.members {
		if member.UserID == userID && member.FieldID == fieldID {
			count++
		}
	}
	return count
}

// repoAuthorizer answers from the fake's membership rows.
type repoAuthorizer struct {
	repo *fakeFieldsRepo
}

func (a repoAuthorizer) AuthorizeField(ctx context.Context, userID, fieldID string, minRole access.Role) error {
	member, err := a.repo.GetMembership(ctx, userID, fieldID)
	if err != nil || !member.Role.Satisfies(minRole) {
		return access.ErrForbidden
	}
	return nil
}

func newTestService() (*Service, *fakeFieldsRepo) {
	repo := newFakeFieldsRepo()
	return NewService(repo, repoAuthorizer{repo: repo}), repo
}

func TestCreateFieldAddsOwner(t *testing.T) {
	svc, repo := newTestService()

	field, err := svc.CreateField(context.Background(), "user-1", "  La Esperanza ")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if field.Name != "La Esperanza" {
		t.Fatalf("expected trimmed name, got %q", field.Name)
	}
	member, err := repo.GetMembership(context.Background(), "user-1", field.ID)
	if err != nil {
		t.Fatalf("expected membership, got %v", err)
	}
	if member.Role != access.RoleOwner {
		t.Fatalf("expected owner role, got %v", member.Role)
	}
}

func TestCreateFieldRequiresName(t *testing.T) {
	svc, _ := newTestService()
	if _, err := svc.CreateField(context.Background(), "user-1", "   "); !errors.Is(err, ErrNameRequired) {
		t.Fatalf("expected ErrNameRequired, got %v", err)
	}
}

func TestListFieldsMarksOwner(t *testing.T) {
	svc, repo := newTestService()
	owned, _ := svc.CreateField(context.Background(), "user-1", "B field")
	other, _ := svc.CreateField(context.Background(), "user-2", "A field")
	repo.members = append(repo.members, access.Membership{UserID: "user-1", FieldID: other.ID, Role: access.RoleMember})

	result, err := svc.ListFields(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(result) != 2 {
		t.Fatalf("expected 2 fields, got %d", len(result))
	}
	if result[0].ID != other.ID || result[0].IsOwner() {
		t.Fatalf("expected member-only field first, got %+v", result[0])
	}
	if result[1].ID != owned.ID || !result[1].IsOwner() {
		t.Fatalf("expected owned field second, got %+v", result[1])
	}
}

func TestGenerateInvitationRequiresOwner(t *testing.T) {
	svc, repo := newTestService()
	field, _ := svc.CreateField(context.Background(), "owner", "Field")
	repo.members = append(repo.members, access.Membership{UserID: "member", FieldID: field.ID, Role: access.RoleMember})

	if _, err := svc.GenerateInvitation(context.Background(), "member", field.ID); !errors.Is(err, access.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for member, got %v", err)
	}
	if _, err := svc.GenerateInvitation(context.Background(), "stranger", field.ID); !errors.Is(err, access.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for stranger, got %v", err)
	}
	if len(repo.invitations) != 0 {
		t.Fatalf("expected no invitation stored, got %d", len(repo.invitations))
	}
}

func TestGenerateInvitationCodeShape(t *testing.T) {
	svc, _ := newTestService()
	field, _ := svc.CreateField(context.Background(), "owner", "Field")
	shape := regexp.MustCompile(`^[A-Z0-9]{6}$`)

	for i := 0; i < 50; i++ {
		invitation, err := svc.GenerateInvitation(context.Background(), "owner", field.ID)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !shape.MatchString(invitation.Code) {
			t.Fatalf("unexpected code %q", invitation.Code)
		}
		if invitation.FieldID != field.ID {
			t.Fatalf("expected field %s, got %s", field.ID, invitation.FieldID)
		}
	}
}

func TestInvitationRoundTrip(t *testing.T) {
	svc, repo := newTestService()
	field, _ := svc.CreateField(context.Background(), "owner", "Field")
	invitation, err := svc.GenerateInvitation(context.Background(), "owner", field.ID)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	result, err := svc.RedeemInvitation(context.Background(), "user-a", " "+strings.ToLower(invitation.Code)+" ")
	if err != nil {
		t.Fatalf("redeem: %v", err)
	}
	if result.AlreadyMember || result.FieldID != field.ID {
		t.Fatalf("unexpected result %+v", result)
	}
	if got := repo.membershipCount("user-a", field.ID); got != 1 {
		t.Fatalf("expected exactly one membership, got %d", got)
	}
	member, _ := repo.GetMembership(context.Background(), "user-a", field.ID)
	if member.Role != access.RoleMember {
		t.Fatalf("expected member role, got %v", member.Role)
	}

	if _, err := svc.RedeemInvitation(context.Background(), "user-b", invitation.Code); !errors.Is(err, ErrInvitationNotFound) {
		t.Fatalf("expected ErrInvitationNotFound on reuse, got %v", err)
	}
	if got := repo.membershipCount("user-b", field.ID); got != 0 {
		t.Fatalf("expected no membership for second redeemer, got %d", got)
	}
}

func TestRedeemByExistingMemberBurnsCode(t *testing.T) {
	svc, repo := newTestService()
	field, _ := svc.CreateField(context.Background(), "owner", "Field")
	invitation, _ := svc.GenerateInvitation(context.Background(), "owner", field.ID)

	result, err := svc.RedeemInvitation(context.Background(), "owner", invitation.Code)
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if !result.AlreadyMember {
		t.Fatalf("expected AlreadyMember")
	}
	if got := repo.membershipCount("owner", field.ID); got != 1 {
		t.Fatalf("expected no duplicate membership, got %d", got)
	}
	if len(repo.invitations) != 0 {
		t.Fatalf("expected code deleted")
	}
}

func TestRedeemInsertFailureKeepsCode(t *testing.T) {
	svc, repo := newTestService()
	field, _ := svc.CreateField(context.Background(), "owner", "Field")
	invitation, _ := svc.GenerateInvitation(context.Background(), "owner", field.ID)
	repo.addErr = errors.New("insert failed")

	if _, err := svc.RedeemInvitation(context.Background(), "user-a", invitation.Code); !errors.Is(err, repo.addErr) {
		t.Fatalf("expected insert error, got %v", err)
	}
	if _, ok := repo.invitations[invitation.ID]; !ok {
		t.Fatalf("expected code to survive a failed insert")
	}
}

func TestRedeemUnknownCode(t *testing.T) {
	svc, _ := newTestService()
	if _, err := svc.RedeemInvitation(context.Background(), "user-a", "ZZZZZZ"); !errors.Is(err, ErrInvitationNotFound) {
		t.Fatalf("expected ErrInvitationNotFound, got %v", err)
	}
	if _, err := svc.RedeemInvitation(context.Background(), "user-a", "  "); !errors.Is(err, ErrCodeRequired) {
		t.Fatalf("expected ErrCodeRequired, got %v", err)
	}
}

func TestListMembersOwnerOnly(t *testing.T) {
	svc, repo := newTestService()
	field, _ := svc.CreateField(context.Background(), "owner", "Field")
	repo.members = append(repo.members, access.Membership{UserID: "member", FieldID: field.ID, Role: access.RoleMember})

	members, err := svc.ListMembers(context.Background(), "owner", field.ID)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(members) != 2 {
		t.Fatalf("expected 2 members, got %d", len(members))
	}
	if _, err := svc.ListMembers(context.Background(), "member", field.ID); !errors.Is(err, access.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}
