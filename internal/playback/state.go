package playback

// State - наблюдаемое состояние автомата воспроизведения
type State int

const (
	// StateIdle - альбом не выбран
	StateIdle State = iota
	// StateAlbumSelectedLoading - альбом выбран, трек еще не запущен
	StateAlbumSelectedLoading
	// StatePlaying - трек запущен и еще играет
	StatePlaying
	// StateFinishedPendingAdvance - трек закончился, следующий тик переключит трек
	StateFinishedPendingAdvance
)

// String возвращает строковое представление состояния
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateAlbumSelectedLoading:
		return "loading"
	case StatePlaying:
		return "playing"
	case StateFinishedPendingAdvance:
		return "finished"
	default:
		return "unknown"
	}
}
