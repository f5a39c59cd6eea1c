package game

import (
	"fmt"
	"math"

	"github.com/pthm-cable/invaders/components"
	"github.com/pthm-cable/invaders/config"
	"github.com/pthm-cable/invaders/entity"
	"github.com/pthm-cable/invaders/geom"
	"github.com/pthm-cable/invaders/platform"
)

// Entity tags.
const (
	TagPlayer = "player"
	TagEnemy  = "enemy"
	TagBullet = components.TagBullet
)

// World holds the entities of one round.
type World struct {
	Registry *entity.Registry
	Bullets  *entity.Pool
	Player   entity.Entity
	Enemies  []entity.Entity
}

// NewWorld builds the bullet pool, the player and the enemy grid.
// The pool is registered first so bullets fired this tick are not updated
// a second time later in the same pass.
func NewWorld(cfg *config.Config, assets platform.Assets, now uint64) (*World, error) {
	w := &World{Registry: entity.NewRegistry()}

	pool, err := entity.NewPool(cfg.Bullet.PoolSize, func() (entity.Entity, error) {
		return createBullet(w.Registry, cfg, assets)
	})
	if err != nil {
		return nil, fmt.Errorf("creating bullet pool: %w", err)
	}
	w.Bullets = pool

	w.Player, err = createPlayer(w.Registry, cfg, assets)
	if err != nil {
		return nil, fmt.Errorf("creating player: %w", err)
	}

	w.Enemies, err = createEnemyGrid(w.Registry, cfg, assets, now)
	if err != nil {
		return nil, fmt.Errorf("creating enemies: %w", err)
	}
	return w, nil
}

// createBullet creates an inactive bullet with one collision circle.
func createBullet(reg *entity.Registry, cfg *config.Config, assets platform.Assets) (entity.Entity, error) {
	b := reg.New(TagBullet)

	sprite, err := components.NewSpriteRenderer(b, assets, cfg.Assets.Bullet)
	if err != nil {
		return entity.Entity{}, err
	}
	if err := b.AddComponent(sprite); err != nil {
		return entity.Entity{}, err
	}
	if err := b.AddComponent(components.NewBulletMover(b, cfg.Bullet.Speed)); err != nil {
		return entity.Entity{}, err
	}
	b.AddCircle(geom.Circle{Center: b.Position(), Radius: cfg.Bullet.Radius})
	return b, nil
}

// createPlayer places the ship centered at the bottom of the screen.
// The player has no collision circle.
func createPlayer(reg *entity.Registry, cfg *config.Config, assets platform.Assets) (entity.Entity, error) {
	p := reg.New(TagPlayer)
	p.SetPosition(geom.V(cfg.Derived.ScreenW/2, cfg.Derived.ScreenH-cfg.Player.Size/2))
	p.SetActive(true)

	sprite, err := components.NewSpriteRenderer(p, assets, cfg.Assets.Player)
	if err != nil {
		return entity.Entity{}, err
	}
	if err := p.AddComponent(sprite); err != nil {
		return entity.Entity{}, err
	}

	mover, err := components.NewKeyboardMover(p, cfg.Player.Speed)
	if err != nil {
		return entity.Entity{}, err
	}
	if err := p.AddComponent(mover); err != nil {
		return entity.Entity{}, err
	}

	turret := geom.V(cfg.Player.TurretOffsetX, cfg.Player.TurretOffsetY)
	if err := p.AddComponent(components.NewKeyboardShooter(p, cfg.Player.ShotCooldownMS, turret)); err != nil {
		return entity.Entity{}, err
	}
	return p, nil
}

// EnemyGridPosition returns the center of the enemy in column col and row row.
func EnemyGridPosition(cfg *config.Config, col, row int) geom.Vec {
	size := cfg.Enemy.Size
	return geom.V(
		float64(col)/float64(cfg.Enemy.Columns)*cfg.Derived.ScreenW+size/2,
		float64(row)*size+size/2,
	)
}

// createEnemyGrid loads the enemy sequences once and spawns the grid column by column.
func createEnemyGrid(reg *entity.Registry, cfg *config.Config, assets platform.Assets, now uint64) ([]entity.Entity, error) {
	if cfg.Enemy.Columns < 0 || cfg.Enemy.Rows < 0 {
		return nil, fmt.Errorf("enemy grid %dx%d is negative", cfg.Enemy.Columns, cfg.Enemy.Rows)
	}
	idle, err := components.LoadSequence(assets, cfg.Assets.EnemyIdle, cfg.Enemy.IdleFPS, true)
	if err != nil {
		return nil, err
	}
	destroy, err := components.LoadSequence(assets, cfg.Assets.EnemyDestroy, cfg.Enemy.DestroyFPS, false)
	if err != nil {
		return nil, err
	}

	enemies := make([]entity.Entity, 0, cfg.Enemy.Columns*cfg.Enemy.Rows)
	for col := 0; col < cfg.Enemy.Columns; col++ {
		for row := 0; row < cfg.Enemy.Rows; row++ {
			e, err := createEnemy(reg, cfg, EnemyGridPosition(cfg, col, row), idle.Clone(), destroy.Clone(), now)
			if err != nil {
				return nil, err
			}
			enemies = append(enemies, e)
		}
	}
	return enemies, nil
}

func createEnemy(reg *entity.Registry, cfg *config.Config, pos geom.Vec, idle, destroy *components.Sequence, now uint64) (entity.Entity, error) {
	e := reg.New(TagEnemy)
	e.SetPosition(pos)
	e.SetRotation(cfg.Enemy.RotationDeg * math.Pi / 180)
	e.SetActive(true)

	animator, err := components.NewAnimator(e, map[string]*components.Sequence{
		components.SequenceIdle:    idle,
		components.SequenceDestroy: destroy,
	}, components.SequenceIdle, now)
	if err != nil {
		return entity.Entity{}, err
	}
	if err := e.AddComponent(animator); err != nil {
		return entity.Entity{}, err
	}

	vulnerable, err := components.NewVulnerableToBullets(e)
	if err != nil {
		return entity.Entity{}, err
	}
	if err := e.AddComponent(vulnerable); err != nil {
		return entity.Entity{}, err
	}

	e.AddCircle(geom.Circle{Center: pos, Radius: cfg.Enemy.Radius})
	return e, nil
}
