package entity

import (
	"golang.org/x/crypto/bcrypt"
)

// User представляет пользователя игры. Строки создаются внешним процессом
// регистрации; это приложение их только читает.
type User struct {
	ID           uint   `gorm:"column:id_usuario;primaryKey" json:"id_usuario"`
	Username     string `gorm:"column:nombre_usuario;size:100;not null" json:"nombre_usuario"`
	Email        string `gorm:"column:correo;size:100;not null;uniqueIndex" json:"-"`
	Gender       string `gorm:"column:genero;size:20;not null;default:''" json:"genero"`
	PasswordHash string `gorm:"column:contrasena_hash;size:100;not null" json:"-"`
}

// TableName определяет имя таблицы для GORM
func (User) TableName() string {
	return "usuarios"
}

// CheckPassword проверяет, соответствует ли переданный пароль хешу.
// Несовпадение и некорректный хеш равнозначны: результат false, не ошибка.
// Сравнение внутри bcrypt устойчиво к timing-атакам.
func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password))
	return err == nil
}
