package messaging

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.Russian

	message.SetString(lang, "page.title", "Статистика бросков игральных костей")
	message.SetString(lang, "page.subtitle", "Исследование распределения случайных величин")
	message.SetString(lang, "page.course", "ФИЗ-1, Университет ИТМО")

	message.SetString(lang, "controls.heading", "Параметры")
	message.SetString(lang, "controls.rolls", "Количество бросков")
	message.SetString(lang, "controls.rolls.help", "Увеличьте для более точных результатов")
	message.SetString(lang, "controls.dice", "Количество костей")
	message.SetString(lang, "controls.bias", "Неидеальность костей")
	message.SetString(lang, "controls.bias.help", "Смещение центра масс (0 = идеальная кость)")
	message.SetString(lang, "controls.run", "Запустить моделирование")
	message.SetString(lang, "controls.running", "Выполняется симуляция...")
	message.SetString(lang, "controls.done", "Готово!")
	message.SetString(lang, "controls.again", "Повторить")

	message.SetString(lang, "plot.axis.sum", "Сумма очков")
	message.SetString(lang, "plot.axis.value", "Значение")
	message.SetString(lang, "plot.axis.density", "Плотность вероятности")
	message.SetString(lang, "plot.legend.experiment", "Эксперимент")
	message.SetString(lang, "plot.legend.theory", "Теория")
	message.SetString(lang, "plot.legend.normal", "Нормальное распределение")

	message.SetString(lang, "results.heading", "Анализ результатов")
	message.SetString(lang, "results.empirical", "Экспериментальные значения")
	message.SetString(lang, "results.theoretical", "Теоретические значения")
	message.SetString(lang, "results.mean", "Среднее")
	message.SetString(lang, "results.std", "Стандартное отклонение")
	message.SetString(lang, "results.expected_mean", "Ожидаемое среднее")
	message.SetString(lang, "results.expected_std", "Ожидаемое отклонение")
	message.SetString(lang, "results.summary", "%d бросков, костей: %d, смещение %+.2f")
	message.SetString(lang, "results.clamped", "Некоторые параметры вышли за допустимые пределы и были скорректированы.")
	message.SetString(lang, "error.title", "Ошибка")

	message.SetString(lang, "theory.title", "Теоретическая справка")
	message.SetString(lang, "theory.heading", "Статистические закономерности")
	message.SetString(lang, "theory.one_die", "Одна кость: равномерное распределение")
	message.SetString(lang, "theory.several_dice", "Несколько костей: нормальное распределение (ЦПТ)")
	message.SetString(lang, "theory.bias", "Неидеальность: смещение вероятностей")

	message.SetString(lang, "comment.close.0", "Точно в цель. Закон больших чисел работает.")
	message.SetString(lang, "comment.close.1", "Выборка согласуется с теорией в пределах случайного шума.")
	message.SetString(lang, "comment.close.2", "Хрестоматийный результат. Кости ведут себя как положено.")
	message.SetString(lang, "comment.far.0", "Выборка заметно отклоняется от теории. Попробуйте больше бросков.")
	message.SetString(lang, "comment.far.1", "Далеко от ожидаемого среднего. Малые выборки бывают упрямы.")
	message.SetString(lang, "comment.far.2", "Необычный исход! Повторите и проверьте, сохранится ли он.")
}
