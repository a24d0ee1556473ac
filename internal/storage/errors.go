package storage

import "errors"

var (
	// ErrNotFound — строки нет или она принадлежит другому пользователю.
	ErrNotFound = errors.New("not found")

	// ErrConflict — версия записи изменилась с момента чтения
	// (оптимистическая блокировка). Отличим от ErrNotFound, чтобы UI мог
	// предложить выбор "перечитать / перезаписать" вместо голой ошибки.
	ErrConflict = errors.New("conflict: project was modified by another session")
)
