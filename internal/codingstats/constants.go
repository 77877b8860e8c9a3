package codingstats

// MonthsInWindow is the trailing activity window length, current month included
const MonthsInWindow = 12
