package entity

import (
	"testing"

	"github.com/samdwyer/depths/internal/gamedata"
)

func TestNewPlayer(t *testing.T) {
	p := NewPlayer()

	actor, ok := p.AsActor()
	if !ok {
		t.Fatal("player should have an actor part")
	}
	if !actor.Alive() || actor.HP != PlayerHP {
		t.Errorf("player should start alive with %d HP, got %d", PlayerHP, actor.HP)
	}
	if _, ok := p.AsItem(); ok {
		t.Error("player should not have an item part")
	}
	if !p.BlocksMovement || p.Order != RenderActor || p.Glyph != '@' {
		t.Errorf("unexpected player: %+v", p)
	}
	if NewPlayer().ID == p.ID {
		t.Error("each entity should get a distinct ID")
	}
}

func TestNewMonsterAndItem(t *testing.T) {
	orc := NewMonster(&gamedata.MonsterDef{ID: "orc", Name: "Orc", Glyph: "o", Color: "#3F7F3F", HP: 10}, 3, 4)
	if x, y := orc.Position(); x != 3 || y != 4 {
		t.Errorf("orc at (%d,%d), want (3,4)", x, y)
	}
	if !orc.IsLivingActor() || !orc.BlocksMovement {
		t.Error("orc should be a living blocking actor")
	}
	if orc.Color != (gamedata.RGB{R: 0x3F, G: 0x7F, B: 0x3F}) {
		t.Errorf("orc color = %+v", orc.Color)
	}

	potion := NewItem(&gamedata.ItemDef{ID: "health_potion", Name: "Health Potion", Glyph: "!", Color: "#7F00FF"}, 1, 1)
	item, ok := potion.AsItem()
	if !ok || item.Kind != "health_potion" {
		t.Fatalf("potion item part = %+v, %v", item, ok)
	}
	if potion.BlocksMovement || potion.IsLivingActor() || potion.Order != RenderItem {
		t.Errorf("unexpected potion: %+v", potion)
	}
}

func TestKill(t *testing.T) {
	orc := NewMonster(&gamedata.MonsterDef{Name: "Orc", Glyph: "o", HP: 10}, 0, 0)
	orc.Kill()

	if orc.IsLivingActor() {
		t.Error("killed actor should not be alive")
	}
	if orc.BlocksMovement {
		t.Error("corpse should not block movement")
	}
	if orc.Order != RenderCorpse || orc.Glyph != '%' || orc.Name != "remains of Orc" {
		t.Errorf("unexpected corpse: %+v", orc)
	}

	// Items have no actor part; Kill leaves them untouched.
	potion := NewItem(&gamedata.ItemDef{Name: "Potion", Glyph: "!"}, 0, 0)
	potion.Kill()
	if potion.Name != "Potion" || potion.Order != RenderItem {
		t.Errorf("Kill should not change items: %+v", potion)
	}
}

func TestMove(t *testing.T) {
	p := NewPlayer()
	p.Place(5, 5)
	p.Move(-1, 2)
	if p.X != 4 || p.Y != 7 {
		t.Errorf("player at (%d,%d), want (4,7)", p.X, p.Y)
	}
}

func TestRenderOrderString(t *testing.T) {
	if RenderCorpse.String() != "corpse" || RenderActor.String() != "actor" || RenderOrder(9).String() != "unknown" {
		t.Error("unexpected RenderOrder names")
	}
	if !(RenderCorpse < RenderItem && RenderItem < RenderActor) {
		t.Error("render order must be corpse < item < actor")
	}
}
